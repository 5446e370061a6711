// Package profiler records named open/close scopes into a fixed ring and dumps
// them as a speedscope evented profile. Without the "profile" build tag the
// scope calls are no-ops.
package profiler

import "runtime"

// Runtime counters, available with or without the "profile" tag.

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int { return runtime.NumGoroutine() }

func NumCPU() int { return runtime.NumCPU() }
