package types

import (
	"testing"

	testingpkg "github.com/ryogrid/bufpool-go/testing/testing_assert"
)

func TestPageIDValidity(t *testing.T) {
	testingpkg.SimpleAssert(t, PageID(0).IsValid())
	testingpkg.SimpleAssert(t, PageID(42).IsValid())
	testingpkg.AssertFalse(t, InvalidPageID.IsValid(), "the invalid id must not pass")
	testingpkg.AssertFalse(t, PageID(-5).IsValid(), "negative ids must not pass")
}

func TestPageIDSerialize(t *testing.T) {
	id := PageID(1234)
	testingpkg.Equals(t, id, NewPageIDFromBytes(id.Serialize()))
}
