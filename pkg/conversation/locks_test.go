package conversation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("conv-1")
			counter++
			km.Unlock("conv-1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	km.Lock("conv-1")
	done := make(chan struct{})
	go func() {
		// A different key must not block behind conv-1.
		km.Lock("conv-2")
		km.Unlock("conv-2")
		close(done)
	}()
	<-done
	km.Unlock("conv-1")
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	km := newKeyedMutex()

	km.Lock("conv-1")
	km.Unlock("conv-1")

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
