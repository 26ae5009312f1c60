package types

// FrameID is the index of a frame slot inside a buffer pool
type FrameID int32

// InvalidFrameID represents "no frame"
const InvalidFrameID = FrameID(-1)

// IsValid checks if id is valid
func (id FrameID) IsValid() bool {
	return id != InvalidFrameID && id >= 0
}
