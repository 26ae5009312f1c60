package types

import (
	"bytes"
	"testing"

	testingpkg "github.com/ryogrid/bufpool-go/testing/testing_assert"
)

func TestPageTagIdentity(t *testing.T) {
	a := NewPageTag(FileID(1), PageID(7))
	sameA := NewPageTag(FileID(1), PageID(7))
	otherFile := NewPageTag(FileID(2), PageID(7))
	otherPage := NewPageTag(FileID(1), PageID(8))

	// a tag is the pair: same file and page compare equal, anything else not
	testingpkg.SimpleAssert(t, a == sameA)
	testingpkg.SimpleAssert(t, a != otherFile)
	testingpkg.SimpleAssert(t, a != otherPage)

	m := map[PageTag]int{a: 1, otherFile: 2}
	testingpkg.Equals(t, 1, m[sameA])
	testingpkg.Equals(t, 2, m[otherFile])
}

func TestPageTagSerializeDiffers(t *testing.T) {
	// the serialized form feeds the page table hash, so distinct tags must
	// serialize distinctly
	a := NewPageTag(FileID(1), PageID(7)).Serialize()
	b := NewPageTag(FileID(7), PageID(1)).Serialize()
	testingpkg.AssertFalse(t, bytes.Equal(a, b), "mirrored tags must not collide byte for byte")
}
