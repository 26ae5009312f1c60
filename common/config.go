// this code is from https://github.com/pzhzqt/goostub
// there is license and copyright notice in licenses/goostub dir

package common

import (
	"time"
)

const EnableDebug bool = false //true

// use on memory virtual storage or not
const EnableOnMemStorage = true

// when this is true, virtual storage use is suppressed
// for test case which can't work with virtual storage
var TempSuppressOnMemStorage = false
var TempSuppressOnMemStorageMutex = NewSH_Mutex()

// deadlock detection on pool latches. detection is heavy, so it is
// off unless debugging a hang
const EnableDeadlockDetection = false //true
var CycleDetectionInterval = time.Second * 30

const (
	// invalid page id
	InvalidPageID = -1
	// invalid file id
	InvalidFileID = -1
	// size of a data page in byte
	PageSize = 4096 //1024  //512
	// upper bound of frame num on tests
	BufferPoolMaxFrameNumForTest = 32 //500
	// log kinds which are printed
	ActiveLogKindSetting = INFO //| BUFFER_INTERNAL_STATE | PIN_COUNT_ASSERT //| DEBUGGING | DEBUG_INFO //DEBUG_INFO_DETAIL
)
