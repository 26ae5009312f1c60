package buffer

import (
	"fmt"

	"github.com/ryogrid/bufpool-go/storage/disk"
	"github.com/ryogrid/bufpool-go/types"
)

// FrameDesc tracks the residency state of one frame. The buffer pool
// manager owns the descriptor table and is the only mutator of it.
// A descriptor with valid == false describes an empty frame and its
// other members carry no meaning.
type FrameDesc struct {
	file     disk.DiskManager
	pageNo   types.PageID
	valid    bool
	dirty    bool
	refbit   bool
	pinCount int32
}

// Set binds the frame to the page identified by (file, pageNo). The
// state after Set is the one a just-loaded page has: pinned once,
// recently referenced, clean.
func (fd *FrameDesc) Set(file disk.DiskManager, pageNo types.PageID) {
	fd.file = file
	fd.pageNo = pageNo
	fd.valid = true
	fd.dirty = false
	fd.refbit = true
	fd.pinCount = 1
}

// Clear returns the descriptor to the empty state
func (fd *FrameDesc) Clear() {
	fd.file = nil
	fd.pageNo = types.InvalidPageID
	fd.valid = false
	fd.dirty = false
	fd.refbit = false
	fd.pinCount = 0
}

// tag returns the page identity bound to the frame. Meaningful only
// while fd.file is set.
func (fd *FrameDesc) tag() types.PageTag {
	return types.NewPageTag(fd.file.FileID(), fd.pageNo)
}

// FrameState is a copy of one descriptor's externally visible state,
// taken for diagnostics and tests. Plain comparable value.
type FrameState struct {
	FileID   types.FileID
	FileName string
	PageNo   types.PageID
	Valid    bool
	Dirty    bool
	Refbit   bool
	PinCount int32
}

// State snapshots the descriptor
func (fd *FrameDesc) State() FrameState {
	state := FrameState{
		FileID:   types.InvalidFileID,
		FileName: "",
		PageNo:   fd.pageNo,
		Valid:    fd.valid,
		Dirty:    fd.dirty,
		Refbit:   fd.refbit,
		PinCount: fd.pinCount,
	}
	if fd.file != nil {
		state.FileID = fd.file.FileID()
		state.FileName = fd.file.Name()
	}
	return state
}

func (fs FrameState) String() string {
	if !fs.Valid && fs.FileID == types.InvalidFileID {
		return "empty"
	}
	return fmt.Sprintf("file:%s pageNo:%d valid:%t refbit:%t dirty:%t pinCount:%d",
		fs.FileName, fs.PageNo, fs.Valid, fs.Refbit, fs.Dirty, fs.PinCount)
}
