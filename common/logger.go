package common

import "fmt"

type LogLevel int32

const (
	DEBUG_INFO_DETAIL     LogLevel = 1
	DEBUG_INFO                     = 2
	BUFFER_INTERNAL_STATE          = 4
	PIN_COUNT_ASSERT               = 8
	DEBUGGING                      = 16
	INFO                           = 32
	WARN                           = 64
	ERROR                          = 128
	FATAL                          = 256
)

func ShPrintf(logLevel LogLevel, fmtStl string, a ...interface{}) {
	if logLevel&ActiveLogKindSetting > 0 {
		fmt.Printf(fmtStl, a...)
	}
}
