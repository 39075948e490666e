package util

import "sync/atomic"

// SafeCounter is an integer counter that is safe to use concurrently.
type SafeCounter struct {
	value atomic.Int32
}

// NewSafeCounter creates a new SafeCounter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment increments the counter and returns the new value.
func (sc *SafeCounter) Increment() int {
	return int(sc.value.Add(1))
}

// Decrement decrements the counter and returns the new value.
func (sc *SafeCounter) Decrement() int {
	return int(sc.value.Add(-1))
}

// Set sets the counter to the given value.
func (sc *SafeCounter) Set(newValue int) {
	sc.value.Store(int32(newValue))
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int {
	return int(sc.value.Load())
}

// SafeFlag is a boolean flag that is safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeFlag creates a new SafeFlag set to false.
func NewSafeFlag() *SafeFlag {
	return &SafeFlag{}
}

// Set sets the value of the flag and returns the new value.
func (sf *SafeFlag) Set(newValue bool) bool {
	sf.value.Store(newValue)
	return newValue
}

// CompareAndSwap sets the flag to new only if it currently holds old.
func (sf *SafeFlag) CompareAndSwap(old, new bool) bool {
	return sf.value.CompareAndSwap(old, new)
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}
