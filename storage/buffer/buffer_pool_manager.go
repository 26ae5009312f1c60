// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package buffer

import (
	"fmt"

	"github.com/ncw/directio"
	"github.com/ryogrid/bufpool-go/common"
	"github.com/ryogrid/bufpool-go/container/hash"
	"github.com/ryogrid/bufpool-go/errors"
	"github.com/ryogrid/bufpool-go/storage/disk"
	"github.com/ryogrid/bufpool-go/storage/page"
	"github.com/ryogrid/bufpool-go/types"
)

const ErrBufferExceeded = errors.Error("all frames of the pool are pinned")
const ErrPageNotPinned = errors.Error("the page is not pinned")
const ErrPagePinned = errors.Error("the page is still pinned")
const ErrBadBuffer = errors.Error("an invalid frame is bound to the file")

// BufferPoolManager mediates every access to disk pages: it decides
// which pages stay on memory, evicts with the clock (second chance)
// policy, and writes dirty pages back before their frame is reused.
// Pages are named by (file, page number), so one pool serves any
// number of files at once. Returned *page.Page references point into
// the pool's own storage and stay usable only while the caller holds
// a pin on the page.
type BufferPoolManager struct {
	pool      []page.Page // frame storage, index is FrameID
	descs     []FrameDesc // frame descriptors, index is FrameID
	pageTable *hash.PageTable
	clockHand types.FrameID
	// once-per-sweep marking of pinned frames. pinnedMark[i] == scanGen
	// means frame i was already counted on the running sweep
	scanGen    uint64
	pinnedMark []uint64
	latch      common.ReaderWriterLatch
}

// NewBufferPoolManager returns an empty buffer pool manager with
// numFrames frames. The frame count is fixed for the pool's lifetime.
func NewBufferPoolManager(numFrames uint32) *BufferPoolManager {
	common.SH_Assert(numFrames > 0, "BPM::NewBufferPoolManager pool needs at least one frame")

	return &BufferPoolManager{
		pool:       make([]page.Page, numFrames),
		descs:      make([]FrameDesc, numFrames),
		pageTable:  hash.NewPageTable(numFrames),
		clockHand:  types.FrameID(numFrames - 1),
		scanGen:    0,
		pinnedMark: make([]uint64, numFrames),
		latch:      common.NewRWLatch(),
	}
}

// FetchPage fetches the requested page from the buffer pool. On a hit
// no disk access happens; on a miss a frame is reclaimed via the clock
// scan and the page is read through the file. The page comes back
// pinned either way and the caller must UnpinPage it eventually.
func (b *BufferPoolManager) FetchPage(file disk.DiskManager, pageNo types.PageID) (*page.Page, error) {
	b.latch.WLock()
	defer b.latch.WUnlock()

	// if it is on buffer pool return it
	tag := types.NewPageTag(file.FileID(), pageNo)
	if frameID, err := b.pageTable.Lookup(tag); err == nil {
		fd := &b.descs[frameID]
		fd.refbit = true
		fd.pinCount++
		if common.EnableDebug {
			common.ShPrintf(common.DEBUG_INFO, "FetchPage: hit %s pinCount=%d\n", tag.String(), fd.pinCount)
		}
		return &b.pool[frameID], nil
	}

	frameID, err := b.allocFrame()
	if err != nil {
		return nil, err
	}

	data := directio.AlignedBlock(common.PageSize)
	if err := file.ReadPage(pageNo, data); err != nil {
		// the reclaimed frame stays empty and unbound
		return nil, err
	}

	b.pool[frameID] = *page.New(pageNo, data)
	b.descs[frameID].Set(file, pageNo)
	insertErr := b.pageTable.Insert(tag, frameID)
	common.SH_Assert(insertErr == nil, "BPM::FetchPage a missed page must not be registered yet")

	if common.EnableDebug {
		common.ShPrintf(common.DEBUG_INFO, "FetchPage: miss %s loaded into frame %d\n", tag.String(), frameID)
	}
	return &b.pool[frameID], nil
}

// UnpinPage unpins the target page from the buffer pool. isDirty is
// ORed into the descriptor, never cleared here. Unpinning a page which
// is not resident is a no-op: it may have been evicted already.
func (b *BufferPoolManager) UnpinPage(file disk.DiskManager, pageNo types.PageID, isDirty bool) error {
	b.latch.WLock()
	defer b.latch.WUnlock()

	tag := types.NewPageTag(file.FileID(), pageNo)
	frameID, err := b.pageTable.Lookup(tag)
	if err != nil {
		return nil
	}

	fd := &b.descs[frameID]
	if fd.pinCount == 0 {
		return ErrPageNotPinned
	}
	fd.pinCount--
	if isDirty {
		fd.dirty = true
	}

	if common.EnableDebug && common.ActiveLogKindSetting&common.PIN_COUNT_ASSERT > 0 {
		common.SH_Assert(fd.pinCount >= 0,
			fmt.Sprintf("BPM::UnpinPage pin count must not be negative. %s pinCount:%d", tag.String(), fd.pinCount))
	}

	return nil
}

// NewPage allocates a brand-new page in the buffer pool with the disk
// manager help. The page number is assigned by the file; the returned
// page carries it and is pinned once.
func (b *BufferPoolManager) NewPage(file disk.DiskManager) (*page.Page, error) {
	b.latch.WLock()
	defer b.latch.WUnlock()

	pageNo := file.AllocatePage()
	frameID, err := b.allocFrame()
	if err != nil {
		return nil, err
	}

	b.pool[frameID] = *page.NewEmpty(pageNo)
	b.descs[frameID].Set(file, pageNo)
	tag := types.NewPageTag(file.FileID(), pageNo)
	insertErr := b.pageTable.Insert(tag, frameID)
	common.SH_Assert(insertErr == nil, "BPM::NewPage a fresh page number must not be registered yet")

	if common.EnableDebug {
		common.ShPrintf(common.DEBUG_INFO, "NewPage: %s placed into frame %d\n", tag.String(), frameID)
	}
	return &b.pool[frameID], nil
}

// FlushFile writes back and releases every resident page of the file.
// The scan aborts with ErrPagePinned at the first page a caller still
// holds; pages handled before that stay flushed, so the call can be
// retried after the pin is dropped. On success no resident frame of
// the file remains.
func (b *BufferPoolManager) FlushFile(file disk.DiskManager) error {
	b.latch.WLock()
	defer b.latch.WUnlock()

	fileID := file.FileID()
	for i := range b.descs {
		fd := &b.descs[i]
		if fd.file == nil || fd.file.FileID() != fileID {
			continue
		}
		if fd.pinCount > 0 {
			return ErrPagePinned
		}
		if !fd.valid {
			if common.EnableDebug {
				common.RuntimeStack()
			}
			return ErrBadBuffer
		}
		if fd.dirty {
			data := b.pool[i].Data()
			if err := fd.file.WritePage(fd.pageNo, data[:]); err != nil {
				return err
			}
			fd.dirty = false
		}
		removeErr := b.pageTable.Remove(fd.tag())
		common.SH_Assert(removeErr == nil, "BPM::FlushFile a valid frame must be registered")
		fd.Clear()
	}
	return nil
}

// DisposePage drops the page from the pool and hands its number to the
// file's deallocator. Contents are discarded, not written back. A page
// which is not resident is a no-op for the pool side.
func (b *BufferPoolManager) DisposePage(file disk.DiskManager, pageNo types.PageID) error {
	b.latch.WLock()
	defer b.latch.WUnlock()

	tag := types.NewPageTag(file.FileID(), pageNo)
	frameID, err := b.pageTable.Lookup(tag)
	if err != nil {
		return nil
	}

	fd := &b.descs[frameID]
	if fd.pinCount > 0 {
		return ErrPagePinned
	}
	removeErr := b.pageTable.Remove(tag)
	common.SH_Assert(removeErr == nil, "BPM::DisposePage a found page must be registered")
	fd.Clear()

	file.DeallocatePage(pageNo)
	return nil
}

// FlushPage writes the single page back to its file when it is
// resident and dirty. Residency, bindings and pins are untouched, so
// this works as a checkpoint helper. Returns false when the page is
// not resident or the write failed.
func (b *BufferPoolManager) FlushPage(file disk.DiskManager, pageNo types.PageID) bool {
	b.latch.WLock()
	defer b.latch.WUnlock()

	tag := types.NewPageTag(file.FileID(), pageNo)
	frameID, err := b.pageTable.Lookup(tag)
	if err != nil {
		return false
	}

	fd := &b.descs[frameID]
	if fd.dirty {
		data := b.pool[frameID].Data()
		if err := fd.file.WritePage(fd.pageNo, data[:]); err != nil {
			return false
		}
		fd.dirty = false
	}
	return true
}

// FlushAllPages flushes all the dirty pages in the buffer pool to disk.
func (b *BufferPoolManager) FlushAllPages() {
	b.latch.WLock()
	defer b.latch.WUnlock()

	for i := range b.descs {
		fd := &b.descs[i]
		if !fd.valid || !fd.dirty {
			continue
		}
		data := b.pool[i].Data()
		if err := fd.file.WritePage(fd.pageNo, data[:]); err == nil {
			fd.dirty = false
		}
	}
}

// allocFrame reclaims one frame with the clock scan and returns it
// cleared and unbound; binding is the caller's job. The hand advances
// round robin. An empty frame is taken on the spot. A pinned frame is
// skipped and counted at most once per sweep: when every frame of the
// pool has been seen pinned the scan gives up with ErrBufferExceeded,
// and because pinned frames are checked before their refbit nothing
// has been mutated by then. A surviving referenced frame loses its
// refbit and gets a second chance. What remains is the victim: its
// contents go back to its file when dirty, its binding is removed, its
// descriptor cleared.
func (b *BufferPoolManager) allocFrame() (types.FrameID, error) {
	numFrames := uint32(len(b.descs))
	b.scanGen++
	pinnedCount := uint32(0)

	for {
		b.advanceClock()
		fd := &b.descs[b.clockHand]

		if !fd.valid {
			return b.clockHand, nil
		}

		if fd.pinCount > 0 {
			if b.pinnedMark[b.clockHand] != b.scanGen {
				b.pinnedMark[b.clockHand] = b.scanGen
				pinnedCount++
				if pinnedCount == numFrames {
					return types.InvalidFrameID, ErrBufferExceeded
				}
			}
			continue
		}

		if fd.refbit {
			fd.refbit = false
			continue
		}

		if fd.dirty {
			data := b.pool[b.clockHand].Data()
			if err := fd.file.WritePage(fd.pageNo, data[:]); err != nil {
				return types.InvalidFrameID, err
			}
			fd.dirty = false
		}
		if common.EnableDebug {
			common.ShPrintf(common.DEBUG_INFO, "allocFrame: %s is cached out of frame %d\n", fd.tag().String(), b.clockHand)
		}
		removeErr := b.pageTable.Remove(fd.tag())
		common.SH_Assert(removeErr == nil, "BPM::allocFrame a victim frame must be registered")
		fd.Clear()
		return b.clockHand, nil
	}
}

func (b *BufferPoolManager) advanceClock() {
	b.clockHand = (b.clockHand + 1) % types.FrameID(len(b.descs))
}

// NumValidFrames reports how many frames currently hold a live page
func (b *BufferPoolManager) NumValidFrames() uint32 {
	b.latch.RLock()
	defer b.latch.RUnlock()

	count := uint32(0)
	for i := range b.descs {
		if b.descs[i].valid {
			count++
		}
	}
	return count
}

// FrameStates snapshots every frame descriptor in frame order
func (b *BufferPoolManager) FrameStates() []FrameState {
	b.latch.RLock()
	defer b.latch.RUnlock()

	states := make([]FrameState, len(b.descs))
	for i := range b.descs {
		states[i] = b.descs[i].State()
	}
	return states
}

// PoolSize returns the fixed frame count of the pool
func (b *BufferPoolManager) PoolSize() uint32 {
	return uint32(len(b.pool))
}

// PrintSelf dumps the descriptor table through the leveled logger
func (b *BufferPoolManager) PrintSelf() {
	states := b.FrameStates()
	validCount := 0
	for frameID, state := range states {
		common.ShPrintf(common.BUFFER_INTERNAL_STATE, "FrameNo:%d %s\n", frameID, state.String())
		if state.Valid {
			validCount++
		}
	}
	common.ShPrintf(common.BUFFER_INTERNAL_STATE, "Total Number of Valid Frames:%d\n", validCount)
}
