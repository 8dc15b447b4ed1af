package util

import (
	"fmt"
	"os"
	"runtime"
)

// FileExists checks if given file exists.
func FileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MemoryUsage reports the process's current Sys memory, in MB.
func MemoryUsage() string {
	m := runtime.MemStats{}
	runtime.ReadMemStats(&m)
	mb := m.Sys / 1024 / 1024
	return fmt.Sprintf("%v MB", mb)
}

// Backtrace gathers a backtrace for the caller.
// Return a slice of up to N stack frames.
func Backtrace(size int) []string {
	pc := make([]uintptr, size)
	n := runtime.Callers(2, pc)
	if n == 0 {
		return []string{}
	}

	pc = pc[:n] // pass only valid pcs to runtime.CallersFrames
	frames := runtime.CallersFrames(pc)

	str := make([]string, size)
	count := 0

	// Loop to get frames.
	// A fixed number of pcs can expand to an indefinite number of Frames.
	for i := 0; i < size; i++ {
		frame, more := frames.Next()
		str[i] = fmt.Sprintf("in %s:%d %s", frame.File, frame.Line, frame.Function)
		count++
		if !more {
			break
		}
	}

	return str[0:count]
}

// DumpProcessTrace logs a full thread dump through log, for diagnosing a
// hang or a deadlocked caller holding the heap's exclusive-access
// contract (spec.md section 5) longer than expected.
func DumpProcessTrace(log Logger) {
	buf := make([]byte, 64*1024)
	_ = runtime.Stack(buf, true)
	log.Info("FULL PROCESS THREAD DUMP:")
	log.Info(string(buf))
}
