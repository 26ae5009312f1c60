// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package disk

import (
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/ncw/directio"
	"github.com/ryogrid/bufpool-go/common"
	"github.com/ryogrid/bufpool-go/errors"
	"github.com/ryogrid/bufpool-go/types"
)

const ErrPastEndOfFile = errors.Error("I/O error past end of file")
const ErrReadFailed = errors.Error("I/O error while reading")
const ErrPartialWrite = errors.Error("bytes written not equals page size")

// process-wide stamp source for FileIDs. identities are never reused,
// so descriptors and page tags can compare files by value
var nextFileID int32 = -1

func stampFileID() types.FileID {
	return types.FileID(atomic.AddInt32(&nextFileID, 1))
}

// DiskManagerImpl is the disk implementation of DiskManager
type DiskManagerImpl struct {
	db         *os.File
	fileName   string
	fileID     types.FileID
	nextPageID types.PageID
	numWrites  uint64
	size       int64
	// page-size aligned scratch for the write path, so page images
	// stay O_DIRECT compatible
	writeBuf []byte
}

// NewDiskManagerImpl returns a DiskManager instance
func NewDiskManagerImpl(dbFilename string) DiskManager {
	file, err := os.OpenFile(dbFilename, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		log.Fatalln("can't open db file")
		return nil
	}

	fileInfo, err := file.Stat()
	if err != nil {
		log.Fatalln("file info error")
		return nil
	}

	fileSize := fileInfo.Size()
	nPages := fileSize / common.PageSize
	nextPageID := types.PageID(int32(nPages))

	return &DiskManagerImpl{file, dbFilename, stampFileID(), nextPageID, 0, fileSize, directio.AlignedBlock(common.PageSize)}
}

// ShutDown closes of the database file
func (d *DiskManagerImpl) ShutDown() {
	d.db.Close()
}

// WritePage writes a page to the database file
func (d *DiskManagerImpl) WritePage(pageId types.PageID, pageData []byte) error {
	offset := int64(pageId) * int64(common.PageSize)
	d.db.Seek(offset, io.SeekStart)

	copy(d.writeBuf, pageData)
	bytesWritten, err := d.db.Write(d.writeBuf)
	if err != nil {
		return err
	}

	if bytesWritten != common.PageSize {
		return ErrPartialWrite
	}

	if offset >= d.size {
		d.size = offset + int64(bytesWritten)
	}

	d.numWrites += 1
	d.db.Sync()
	return nil
}

// ReadPage reads a page from the database file
func (d *DiskManagerImpl) ReadPage(pageID types.PageID, pageData []byte) error {
	offset := int64(pageID) * int64(common.PageSize)

	fileInfo, err := d.db.Stat()
	if err != nil {
		return ErrReadFailed
	}

	if offset >= fileInfo.Size() {
		return ErrPastEndOfFile
	}

	d.db.Seek(offset, io.SeekStart)

	bytesRead, err := d.db.Read(pageData)
	if err != nil && err != io.EOF {
		return ErrReadFailed
	}

	// a page at the tail of the file may be shorter than PageSize
	for i := bytesRead; i < common.PageSize; i++ {
		pageData[i] = 0
	}
	return nil
}

// AllocatePage allocates a new page
// For now just keep an increasing counter
func (d *DiskManagerImpl) AllocatePage() types.PageID {
	ret := d.nextPageID
	d.nextPageID++
	return ret
}

// DeallocatePage deallocates page
// Need bitmap in header page for tracking pages
// This does not actually need to do anything for now.
func (d *DiskManagerImpl) DeallocatePage(pageID types.PageID) {
}

// GetNumWrites returns the number of disk writes
func (d *DiskManagerImpl) GetNumWrites() uint64 {
	return d.numWrites
}

// FileID returns the identity stamped on this file at open time
func (d *DiskManagerImpl) FileID() types.FileID {
	return d.fileID
}

// Name returns the file name for diagnostics
func (d *DiskManagerImpl) Name() string {
	return d.fileName
}

// Size returns the size of the file in disk
func (d *DiskManagerImpl) Size() int64 {
	return d.size
}

// ATTENTION: this method can be call after calling of Shutdown method
func (d *DiskManagerImpl) RemoveDBFile() {
	os.Remove(d.fileName)
}
