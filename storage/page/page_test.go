// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package page

import (
	"testing"

	"github.com/ryogrid/bufpool-go/common"
	testingpkg "github.com/ryogrid/bufpool-go/testing/testing_assert"
	"github.com/ryogrid/bufpool-go/types"
)

func TestNewPage(t *testing.T) {
	p := New(types.PageID(0), []byte{'H', 'E', 'L', 'L', 'O'})

	testingpkg.Equals(t, types.PageID(0), p.ID())
	testingpkg.Equals(t, [common.PageSize]byte{'H', 'E', 'L', 'L', 'O'}, *p.Data())

	// New copies its input, so later writes to the source do not show up
	src := []byte{'a', 'b', 'c'}
	q := New(types.PageID(1), src)
	src[0] = 'z'
	testingpkg.Equals(t, byte('a'), q.Data()[0])
}

func TestEmptyPage(t *testing.T) {
	p := NewEmpty(types.PageID(0))

	testingpkg.Equals(t, types.PageID(0), p.ID())
	testingpkg.Equals(t, [common.PageSize]byte{}, *p.Data())
}

func TestCopyAtOffset(t *testing.T) {
	p := NewEmpty(types.PageID(3))
	p.Copy(0, []byte("head"))
	p.Copy(common.PageSize-4, []byte("tail"))

	testingpkg.Equals(t, byte('h'), p.Data()[0])
	testingpkg.Equals(t, byte('l'), p.Data()[common.PageSize-1])
}

func TestPageIsAPlainValue(t *testing.T) {
	p := New(types.PageID(7), []byte("original"))

	clone := *p
	testingpkg.SimpleAssert(t, clone == *p)

	// mutating the copy leaves the source page alone
	clone.Copy(0, []byte("mutated!"))
	testingpkg.SimpleAssert(t, clone != *p)

	var want [common.PageSize]byte
	copy(want[:], "original")
	testingpkg.Equals(t, want, *p.Data())
}
