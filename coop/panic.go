package coop

import "runtime/debug"

// PanicInfo describes a panic recovered from a thread's entry routine.
type PanicInfo struct {
	ThreadID ThreadID
	Name     string
	Value    any
	Stack    []byte
}

func captureStack() []byte {
	return debug.Stack()
}
