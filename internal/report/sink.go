// Package report is the consistency checker's diagnostic sink (§4.9 of the
// spec): formats human-readable violation lines directly to an io.Writer,
// plus the structured Violation slice CheckHeap returns for programmatic
// use.
//
// It has no effect on allocator state; Sink only ever reads what it's told
// and writes to the io.Writer it was given.
package report

import (
	"io"
	"strconv"
	"unsafe"

	"github.com/bytedance/gopkg/lang/mcache"
)

// Violation describes a single invariant violation found by the checker.
type Violation struct {
	Kind    string
	Detail  string
	Address unsafe.Pointer
}

// Sink collects Violations and, when verbose, writes a human-readable line
// per violation straight to w. Each Report call formats into an
// mcache-backed scratch buffer and issues a single Write — a checker
// reports at most a handful of violations per call, so there is nothing
// worth batching across writes the way a protocol codec would.
type Sink struct {
	w          io.Writer
	violations []Violation
}

// NewSink returns a Sink that writes verbose output to w. Pass a nil w to
// collect violations silently (CheckHeap(false) never touches w).
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Report records a violation and, if the Sink has a writer, writes a
// formatted line for it immediately.
func (s *Sink) Report(kind, detail string, addr unsafe.Pointer) {
	s.violations = append(s.violations, Violation{Kind: kind, Detail: detail, Address: addr})
	if s.w == nil {
		return
	}

	line := mcache.Malloc(0, 128)
	line = append(line, kind...)
	line = append(line, ": "...)
	line = append(line, detail...)
	if addr != nil {
		line = append(line, " (at 0x"...)
		line = strconv.AppendUint(line, uint64(uintptr(addr)), 16)
		line = append(line, ')')
	}
	line = append(line, '\n')

	_, _ = s.w.Write(line)
	mcache.Free(line)
}

// Violations returns every violation recorded so far.
func (s *Sink) Violations() []Violation {
	return s.violations
}

// Clean reports whether no violations have been recorded.
func (s *Sink) Clean() bool {
	return len(s.violations) == 0
}
