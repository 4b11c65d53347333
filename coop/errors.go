package coop

import "errors"

// Sentinel errors returned by the scheduling API. Callers should use
// errors.Is rather than comparing values directly, since wrapped
// variants may carry additional context (the disabled feature's name).
var (
	// ErrInvalidArg is returned by Schedule when proc is nil.
	ErrInvalidArg = errors.New("coop: schedule: no entry routine")

	// ErrLimit is returned by Schedule when the thread pool is full.
	ErrLimit = errors.New("coop: schedule: thread pool exhausted")

	// ErrFeatureDisabled is returned by YieldAfter, Idle, Wait, Notify
	// and NotifyAll when the corresponding Config toggle is off.
	ErrFeatureDisabled = errors.New("coop: feature disabled")

	// ErrNotRunning is returned by operations that require a currently
	// running thread (YieldAfter, Idle, Wait) when called outside of any
	// scheduled thread's goroutine.
	ErrNotRunning = errors.New("coop: no thread is currently running")
)
