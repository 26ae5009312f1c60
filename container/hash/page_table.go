package hash

import (
	"math"

	pair "github.com/notEpsilon/go-pair"
	"github.com/ryogrid/bufpool-go/common"
	"github.com/ryogrid/bufpool-go/errors"
	"github.com/ryogrid/bufpool-go/types"
)

const ErrDuplicateKey = errors.Error("the page tag is already registered")
const ErrKeyNotFound = errors.Error("the page tag is not registered")

type pageTableEntry struct {
	tag     types.PageTag
	frameID types.FrameID
}

// PageTable maps resident page tags to the frame which holds them.
// It is a chained hash table keyed by murmur3 over the serialized tag.
// Population never exceeds the frame count of the owning pool, so the
// bucket array is sized once at construction and never grows.
type PageTable struct {
	buckets    [][]pageTableEntry
	numEntries uint32
	tableLatch common.ReaderWriterLatch
}

// bucket count for a pool with numFrames frames: always odd and
// strictly above the frame count, which keeps chains short for every
// reachable population
func pageTableSize(numFrames uint32) uint32 {
	return (uint32(math.Ceil(float64(numFrames)*1.2)) &^ 1) + 1
}

func NewPageTable(numFrames uint32) *PageTable {
	return &PageTable{
		buckets:    make([][]pageTableEntry, pageTableSize(numFrames)),
		numEntries: 0,
		tableLatch: common.NewRWLatch(),
	}
}

func (ht *PageTable) bucketIdx(tag types.PageTag) uint32 {
	return GenHashMurMur(tag.Serialize()) % uint32(len(ht.buckets))
}

// Insert registers tag -> frameID. Fails with ErrDuplicateKey when the
// tag is already present (a page can be resident in one frame only).
func (ht *PageTable) Insert(tag types.PageTag, frameID types.FrameID) error {
	ht.tableLatch.WLock()
	defer ht.tableLatch.WUnlock()

	idx := ht.bucketIdx(tag)
	for _, entry := range ht.buckets[idx] {
		if entry.tag == tag {
			return ErrDuplicateKey
		}
	}
	ht.buckets[idx] = append(ht.buckets[idx], pageTableEntry{tag, frameID})
	ht.numEntries++
	return nil
}

// Lookup returns the frame which holds tag. Absence is reported with
// ErrKeyNotFound and is an expected outcome, not a fault: fetch uses
// it to tell a hit from a miss.
func (ht *PageTable) Lookup(tag types.PageTag) (types.FrameID, error) {
	ht.tableLatch.RLock()
	defer ht.tableLatch.RUnlock()

	idx := ht.bucketIdx(tag)
	for _, entry := range ht.buckets[idx] {
		if entry.tag == tag {
			return entry.frameID, nil
		}
	}
	return types.InvalidFrameID, ErrKeyNotFound
}

// Remove unbinds tag. Fails with ErrKeyNotFound when absent.
func (ht *PageTable) Remove(tag types.PageTag) error {
	ht.tableLatch.WLock()
	defer ht.tableLatch.WUnlock()

	idx := ht.bucketIdx(tag)
	bucket := ht.buckets[idx]
	for i, entry := range bucket {
		if entry.tag == tag {
			bucket[i] = bucket[len(bucket)-1]
			ht.buckets[idx] = bucket[:len(bucket)-1]
			ht.numEntries--
			return nil
		}
	}
	return ErrKeyNotFound
}

// GetAllEntries takes a snapshot of all registered bindings. Order is
// not defined.
func (ht *PageTable) GetAllEntries() []pair.Pair[types.PageTag, types.FrameID] {
	ht.tableLatch.RLock()
	defer ht.tableLatch.RUnlock()

	entries := make([]pair.Pair[types.PageTag, types.FrameID], 0, ht.numEntries)
	for _, bucket := range ht.buckets {
		for _, entry := range bucket {
			entries = append(entries, pair.Pair[types.PageTag, types.FrameID]{First: entry.tag, Second: entry.frameID})
		}
	}
	return entries
}

func (ht *PageTable) NumEntries() uint32 {
	ht.tableLatch.RLock()
	defer ht.tableLatch.RUnlock()
	return ht.numEntries
}

func (ht *PageTable) NumBuckets() uint32 {
	return uint32(len(ht.buckets))
}
