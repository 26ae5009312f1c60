package hash

import (
	"testing"

	testingpkg "github.com/ryogrid/bufpool-go/testing/testing_assert"
	"github.com/ryogrid/bufpool-go/types"
)

func TestPageTableInsertAndLookup(t *testing.T) {
	pt := NewPageTable(10)

	for i := 0; i < 5; i++ {
		tag := types.NewPageTag(types.FileID(1), types.PageID(i))
		testingpkg.Ok(t, pt.Insert(tag, types.FrameID(i)))
	}
	testingpkg.Equals(t, uint32(5), pt.NumEntries())

	for i := 0; i < 5; i++ {
		frameID, err := pt.Lookup(types.NewPageTag(types.FileID(1), types.PageID(i)))
		testingpkg.Ok(t, err)
		testingpkg.Equals(t, types.FrameID(i), frameID)
	}

	// Scenario: the same page number under another file is a distinct key.
	other := types.NewPageTag(types.FileID(2), types.PageID(0))
	frameID, err := pt.Lookup(other)
	testingpkg.Equals(t, types.InvalidFrameID, frameID)
	testingpkg.Equals(t, ErrKeyNotFound, err)

	testingpkg.Ok(t, pt.Insert(other, types.FrameID(9)))
	frameID, err = pt.Lookup(other)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, types.FrameID(9), frameID)
}

func TestPageTableDuplicateInsert(t *testing.T) {
	pt := NewPageTable(10)

	tag := types.NewPageTag(types.FileID(0), types.PageID(7))
	testingpkg.Ok(t, pt.Insert(tag, types.FrameID(1)))

	// Scenario: a page can be resident in one frame only, so the second
	// insert is refused and the first binding survives.
	testingpkg.Equals(t, ErrDuplicateKey, pt.Insert(tag, types.FrameID(2)))

	frameID, err := pt.Lookup(tag)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, types.FrameID(1), frameID)
	testingpkg.Equals(t, uint32(1), pt.NumEntries())
}

func TestPageTableRemove(t *testing.T) {
	pt := NewPageTable(10)

	tag := types.NewPageTag(types.FileID(3), types.PageID(42))
	testingpkg.Ok(t, pt.Insert(tag, types.FrameID(0)))
	testingpkg.Ok(t, pt.Remove(tag))
	testingpkg.Equals(t, uint32(0), pt.NumEntries())

	_, err := pt.Lookup(tag)
	testingpkg.Equals(t, ErrKeyNotFound, err)

	// Scenario: removing twice, or removing a key which was never there,
	// reports the absence.
	testingpkg.Equals(t, ErrKeyNotFound, pt.Remove(tag))
	testingpkg.Equals(t, ErrKeyNotFound, pt.Remove(types.NewPageTag(types.FileID(3), types.PageID(43))))

	// Scenario: the tag can be registered again after removal.
	testingpkg.Ok(t, pt.Insert(tag, types.FrameID(5)))
	frameID, err := pt.Lookup(tag)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, types.FrameID(5), frameID)
}

func TestPageTableGetAllEntries(t *testing.T) {
	pt := NewPageTable(8)

	want := map[types.PageTag]types.FrameID{
		types.NewPageTag(types.FileID(0), types.PageID(0)): types.FrameID(0),
		types.NewPageTag(types.FileID(0), types.PageID(1)): types.FrameID(1),
		types.NewPageTag(types.FileID(1), types.PageID(0)): types.FrameID(2),
		types.NewPageTag(types.FileID(1), types.PageID(5)): types.FrameID(3),
	}
	for tag, frameID := range want {
		testingpkg.Ok(t, pt.Insert(tag, frameID))
	}

	entries := pt.GetAllEntries()
	testingpkg.Equals(t, len(want), len(entries))

	got := make(map[types.PageTag]types.FrameID)
	for _, entry := range entries {
		got[entry.First] = entry.Second
	}
	testingpkg.Equals(t, want, got)
}

func TestPageTableSizing(t *testing.T) {
	// Scenario: the bucket count is odd and stays above the frame count.
	testingpkg.Equals(t, uint32(5), NewPageTable(3).NumBuckets())
	testingpkg.Equals(t, uint32(13), NewPageTable(10).NumBuckets())
	testingpkg.Equals(t, uint32(39), NewPageTable(32).NumBuckets())

	// Scenario: chaining absorbs populations well past the bucket count.
	pt := NewPageTable(4)
	for i := 0; i < 50; i++ {
		testingpkg.Ok(t, pt.Insert(types.NewPageTag(types.FileID(0), types.PageID(i)), types.FrameID(i)))
	}
	testingpkg.Equals(t, uint32(50), pt.NumEntries())
	for i := 0; i < 50; i++ {
		frameID, err := pt.Lookup(types.NewPageTag(types.FileID(0), types.PageID(i)))
		testingpkg.Ok(t, err)
		testingpkg.Equals(t, types.FrameID(i), frameID)
	}
}
