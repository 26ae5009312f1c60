package page

import (
	"github.com/ryogrid/bufpool-go/common"
	"github.com/ryogrid/bufpool-go/types"
)

// PageSize is the size of one page slot in bytes
const PageSize = common.PageSize

// Page carries one disk page's worth of bytes plus the page number
// embedded in it. It is a plain value: assigning a Page copies the
// whole slot, == compares number and contents. Residency metadata
// (pin count, dirty bit and so on) lives in the frame descriptor,
// not here.
type Page struct {
	id   types.PageID
	data [common.PageSize]byte
}

// ID returns the page id
func (p *Page) ID() types.PageID {
	return p.id
}

// Data returns the page body
func (p *Page) Data() *[common.PageSize]byte {
	return &p.data
}

// Copy copies data to the page body from offset
func (p *Page) Copy(offset uint32, data []byte) {
	copy(p.data[offset:], data)
}

func New(id types.PageID, data []byte) *Page {
	p := &Page{id: id}
	copy(p.data[:], data)
	return p
}

func NewEmpty(id types.PageID) *Page {
	return &Page{id: id}
}
