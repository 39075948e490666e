package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounterConcurrentIncrement(t *testing.T) {
	sc := NewSafeCounter()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sc.Increment()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, sc.Value())
}

func TestSafeCounterBalancedReturnsToZero(t *testing.T) {
	sc := NewSafeCounter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sc.Increment()
			sc.Decrement()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, sc.Value())
}

func TestSafeFlag(t *testing.T) {
	sf := NewSafeFlag()
	assert.False(t, sf.Value())

	sf.Set(true)
	assert.True(t, sf.Value())

	// CAS only succeeds when the current value matches.
	assert.False(t, sf.CompareAndSwap(false, true))
	assert.True(t, sf.CompareAndSwap(true, false))
	assert.False(t, sf.Value())
}
