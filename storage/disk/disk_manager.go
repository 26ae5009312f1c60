package disk

import (
	"github.com/ryogrid/bufpool-go/types"
)

// DiskManager is responsible for interacting with one disk file.
// A buffer pool serves many of these at once, so every instance
// carries a process-unique FileID which the pool uses as the file
// half of a page's identity.
type DiskManager interface {
	ReadPage(types.PageID, []byte) error
	WritePage(types.PageID, []byte) error
	AllocatePage() types.PageID
	DeallocatePage(types.PageID)
	GetNumWrites() uint64
	FileID() types.FileID
	Name() string
	ShutDown()
	Size() int64
}
