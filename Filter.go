/*
File Name:  Filter.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Filters allow the caller to intercept events to log, forward, or observe.
The host scheduler or application installs them before Init; unused ones may
remain nil and are replaced by blank functions.
*/

package core

import (
	"log"
)

// Filters contains all event hook functions. Use nil for unused.
// The functions are called sequentially and block execution; if a filter takes a long time it should start a Go routine.
type Filters struct {
	// NeighborUp is called every time a node is newly registered as neighbor.
	// Note that neighbors expire and reappear between rounds, i.e. this function may be called multiple times for the same node.
	NeighborUp func(ip Address, record NeighborRecord)

	// NeighborDown is called every time a neighbor is explicitly unregistered.
	NeighborDown func(ip Address)

	// NeighborExpired is called for every neighbor removed by the sweep at the end of a discovery round.
	NeighborExpired func(ip Address)

	// CallRegistered is called every time an attending call is registered.
	CallRegistered func(record CallRecord)

	// CallClosed is called every time an attending call is closed.
	CallClosed func(ip Address)

	// LogError is called for any error. If this function is overwritten by the caller, the caller must write errors into the log file if desired, or call DefaultLogError.
	LogError func(function, format string, v ...interface{})
}

func (backend *Backend) initFilters() {
	// Set default filters to blank functions so they can be safely called without constant nil checks.
	// Only if not already set before init.

	if backend.Filters.NeighborUp == nil {
		backend.Filters.NeighborUp = func(ip Address, record NeighborRecord) {}
	}
	if backend.Filters.NeighborDown == nil {
		backend.Filters.NeighborDown = func(ip Address) {}
	}
	if backend.Filters.NeighborExpired == nil {
		backend.Filters.NeighborExpired = func(ip Address) {}
	}
	if backend.Filters.CallRegistered == nil {
		backend.Filters.CallRegistered = func(record CallRecord) {}
	}
	if backend.Filters.CallClosed == nil {
		backend.Filters.CallClosed = func(ip Address) {}
	}
	if backend.Filters.LogError == nil {
		backend.Filters.LogError = DefaultLogError
	}
}

// DefaultLogError is the default error logging function
func DefaultLogError(function, format string, v ...interface{}) {
	log.Printf("["+function+"] "+format, v...)
}

// LogError reports an error via the installed LogError filter.
func (backend *Backend) LogError(function, format string, v ...interface{}) {
	backend.Filters.LogError(function, format, v...)
}
