// Package coop implements a lightweight cooperative threading core for
// resource-constrained targets: a fixed-size pool of cooperatively
// scheduled threads that round-robin between voluntary yield points,
// timed idle sleeps, and semaphore waits.
//
// Threads never run concurrently with each other. Exactly one thread's
// user code is live at any instant; the scheduler regains control only
// at a thread's own yield-family call or when its entry routine returns.
// The pool, its counters, and the round-robin dispatch loop are a direct
// port of a setjmp/longjmp-based C scheduler that carves every thread's
// stack out of one shared main stack; this port instead gives each
// thread its own goroutine (and therefore its own real stack) and uses
// a blocking channel handoff, a "baton", to keep exactly one of them
// runnable at a time. See the package's design notes for the mapping
// between the two.
package coop
