// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poed/counter"
)

func TestAcquireRelease(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(0), c.Uint64(), "not zero at start")

	assert.True(t, c.Acquire(2), "first")
	assert.True(t, c.Acquire(2), "second")
	assert.False(t, c.Acquire(2), "above maximum")
	assert.Equal(t, uint64(2), c.Uint64(), "wrong count")

	c.Release()
	c.Release()
	c.Release()
	assert.Equal(t, uint64(0), c.Uint64(), "released below zero")

	assert.False(t, c.Acquire(0), "zero maximum")
}

func TestConcurrentAcquire(t *testing.T) {
	const maximum = 10

	var c counter.Counter
	var wg sync.WaitGroup
	var mutex sync.Mutex
	acquired := 0

	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(maximum) {
				mutex.Lock()
				acquired += 1
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, maximum, acquired, "wrong number acquired")
	assert.Equal(t, float64(maximum), c.Float64(), "wrong count")
}
