package types

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// PageTag names one disk page independently of whether it is resident
// in memory: the owning file plus the page number inside that file.
// Two tags are equal iff both members are equal, so the zero-overhead
// == comparison and use as a map key are both fine.
type PageTag struct {
	FileID FileID
	PageNo PageID
}

func NewPageTag(fileID FileID, pageNo PageID) PageTag {
	return PageTag{FileID: fileID, PageNo: pageNo}
}

// Serialize casts it to []byte
func (tag PageTag) Serialize() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, tag)
	return buf.Bytes()
}

func (tag PageTag) String() string {
	return fmt.Sprintf("(file:%d page:%d)", tag.FileID, tag.PageNo)
}
