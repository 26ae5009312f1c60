package buffer

import (
	"testing"

	"github.com/ryogrid/bufpool-go/storage/disk"
	testingpkg "github.com/ryogrid/bufpool-go/testing/testing_assert"
	"github.com/ryogrid/bufpool-go/types"
)

func TestFrameDescLifecycle(t *testing.T) {
	dm := disk.NewDiskManagerTest()
	defer dm.ShutDown()

	var fd FrameDesc
	testingpkg.Equals(t, "empty", fd.State().String())

	// Scenario: binding a page makes the frame valid, referenced, clean
	// and pinned once.
	fd.Set(dm, types.PageID(12))
	state := fd.State()
	testingpkg.Equals(t, dm.FileID(), state.FileID)
	testingpkg.Equals(t, types.PageID(12), state.PageNo)
	testingpkg.SimpleAssert(t, state.Valid)
	testingpkg.SimpleAssert(t, state.Refbit)
	testingpkg.AssertFalse(t, state.Dirty, "a freshly bound frame is clean")
	testingpkg.Equals(t, int32(1), state.PinCount)

	// Scenario: clearing forgets the binding completely.
	fd.Clear()
	state = fd.State()
	testingpkg.Equals(t, "empty", state.String())
	testingpkg.AssertFalse(t, state.Valid, "a cleared frame holds nothing")
	testingpkg.Equals(t, int32(0), state.PinCount)
}
