package types

import (
	"bytes"
	"encoding/binary"
)

// FileID identifies one open disk file for the lifetime of the
// process. It is stamped on a file at open time and never reused, so
// two files are the same iff their FileIDs are equal.
type FileID int32

// InvalidFileID represents a file handle which is not bound to a file
const InvalidFileID = FileID(-1)

// IsValid checks if id is valid
func (id FileID) IsValid() bool {
	return id != InvalidFileID && id >= 0
}

// Serialize casts it to []byte
func (id FileID) Serialize() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, id)
	return buf.Bytes()
}

// NewFileIDFromBytes creates a file id from []byte
func NewFileIDFromBytes(data []byte) (ret FileID) {
	binary.Read(bytes.NewBuffer(data), binary.LittleEndian, &ret)
	return ret
}
