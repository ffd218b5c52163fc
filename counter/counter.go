// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - concurrent count of held resources with an upper limit
package counter

import (
	"sync/atomic"
)

// Counter - number of resources currently held
type Counter struct {
	value uint64
}

// Acquire - add 1 unless the count has reached maximum
func (c *Counter) Acquire(maximum uint64) bool {
	for {
		current := atomic.LoadUint64(&c.value)
		if current >= maximum {
			return false
		}
		if atomic.CompareAndSwapUint64(&c.value, current, current+1) {
			return true
		}
	}
}

// Release - subtract 1, never below zero
func (c *Counter) Release() {
	for {
		current := atomic.LoadUint64(&c.value)
		if 0 == current {
			return
		}
		if atomic.CompareAndSwapUint64(&c.value, current, current-1) {
			return
		}
	}
}

// Uint64 - current count
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Float64 - current count for gauges
func (c *Counter) Float64() float64 {
	return float64(c.Uint64())
}
