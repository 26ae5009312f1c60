package disk

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dsnet/golib/memfile"
	"github.com/golang-collections/collections/stack"
	"github.com/ryogrid/bufpool-go/common"
	"github.com/ryogrid/bufpool-go/types"
)

// VirtualDiskManagerImpl is a DiskManager which lives on memory.
// It is used on tests and on ephemeral pools which do not need their
// pages to survive the process.
type VirtualDiskManagerImpl struct {
	db          *memfile.File //[]byte
	fileName    string
	fileID      types.FileID
	nextPageID  types.PageID
	numWrites   uint64
	size        int64
	dbFileMutex *sync.Mutex
	// space of deallocated pages is recycled: a page id handed out by
	// AllocatePage is never reused, but the file space which backed a
	// deallocated page is
	reusableSpaceIDs *stack.Stack
	spaceIDConvMap   map[types.PageID]types.PageID
	deallocedIDs     mapset.Set[types.PageID]
}

func NewVirtualDiskManagerImpl(dbFilename string) DiskManager {
	file := memfile.New(make([]byte, 0))

	fileSize := int64(0)
	nextPageID := types.PageID(0)

	return &VirtualDiskManagerImpl{file, dbFilename, stampFileID(), nextPageID, 0, fileSize, new(sync.Mutex), stack.New(), make(map[types.PageID]types.PageID), mapset.NewSet[types.PageID]()}
}

// ShutDown closes of the database file
func (d *VirtualDiskManagerImpl) ShutDown() {
	// do nothing
}

// spaceID(pageID) conversion for reuse of file space which is allocated to deallocated page
func (d *VirtualDiskManagerImpl) convToSpaceID(pageID types.PageID) (spaceID types.PageID) {
	if convedID, exist := d.spaceIDConvMap[pageID]; exist {
		return convedID
	} else {
		return pageID
	}
}

// WritePage writes a page to the database file
func (d *VirtualDiskManagerImpl) WritePage(pageId types.PageID, pageData []byte) error {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	offset := int64(d.convToSpaceID(pageId)) * int64(common.PageSize)
	d.db.WriteAt(pageData, offset)

	if offset >= d.size {
		d.size = offset + int64(len(pageData))
	}

	d.numWrites += 1
	return nil
}

// ReadPage reads a page from the database file
func (d *VirtualDiskManagerImpl) ReadPage(pageID types.PageID, pageData []byte) error {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	if d.deallocedIDs.Contains(pageID) {
		return types.DeallocatedPageErr
	}

	offset := int64(d.convToSpaceID(pageID)) * int64(common.PageSize)

	if offset > d.size || offset+int64(len(pageData)) > d.size {
		return ErrPastEndOfFile
	}

	_, err := d.db.ReadAt(pageData, offset)
	if err != nil {
		panic("file read error!")
	}
	return err
}

// AllocatePage allocates a new page
func (d *VirtualDiskManagerImpl) AllocatePage() types.PageID {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	ret := d.nextPageID
	if d.reusableSpaceIDs.Len() > 0 {
		reuseID := d.reusableSpaceIDs.Pop().(types.PageID)
		d.spaceIDConvMap[ret] = reuseID
	}
	d.nextPageID++

	return ret
}

// DeallocatePage marks the page as dead and recycles its space
func (d *VirtualDiskManagerImpl) DeallocatePage(pageID types.PageID) {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	d.deallocedIDs.Add(pageID)
	if convedID, exist := d.spaceIDConvMap[pageID]; exist {
		d.reusableSpaceIDs.Push(convedID)
		delete(d.spaceIDConvMap, pageID)
	} else {
		d.reusableSpaceIDs.Push(pageID)
	}
}

// GetNumWrites returns the number of disk writes
func (d *VirtualDiskManagerImpl) GetNumWrites() uint64 {
	return d.numWrites
}

// FileID returns the identity stamped on this file at creation time
func (d *VirtualDiskManagerImpl) FileID() types.FileID {
	return d.fileID
}

// Name returns the file name for diagnostics
func (d *VirtualDiskManagerImpl) Name() string {
	return d.fileName
}

// Size returns the size of the file in disk
func (d *VirtualDiskManagerImpl) Size() int64 {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()
	return d.size
}
