// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weights_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poed/weights"
)

func TestReference(t *testing.T) {
	r := weights.NewReference()

	access := weights.Weight(125_000_000)

	tests := []struct {
		length   uint32
		create   weights.Weight
		revoke   weights.Weight
		transfer weights.Weight
	}{
		{0, 42_000_000 + access, 40_000_000 + access, 41_000_000 + access},
		{2, 42_006_000 + access, 40_004_000 + access, 41_005_000 + access},
		{128, 42_384_000 + access, 40_256_000 + access, 41_320_000 + access},
	}

	for i, item := range tests {
		assert.Equal(t, item.create, r.CreateClaim(item.length), "%d: create", i)
		assert.Equal(t, item.revoke, r.RevokeClaim(item.length), "%d: revoke", i)
		assert.Equal(t, item.transfer, r.TransferClaim(item.length), "%d: transfer", i)
	}
}

func TestMonotonic(t *testing.T) {
	r := weights.NewReference()
	for n := uint32(0); n < 300; n += 1 {
		assert.True(t, r.CreateClaim(n) <= r.CreateClaim(n+1), "create not monotonic at %d", n)
		assert.True(t, r.RevokeClaim(n) <= r.RevokeClaim(n+1), "revoke not monotonic at %d", n)
		assert.True(t, r.TransferClaim(n) <= r.TransferClaim(n+1), "transfer not monotonic at %d", n)
	}
}

func TestSaturating(t *testing.T) {
	max := weights.Weight(math.MaxUint64)

	assert.Equal(t, max, max.AddSaturating(1), "add overflow")
	assert.Equal(t, weights.Weight(3), weights.Weight(1).AddSaturating(2), "add")
	assert.Equal(t, max, max.MulSaturating(2), "mul overflow")
	assert.Equal(t, weights.Weight(0), max.MulSaturating(0), "mul zero")
	assert.Equal(t, weights.Weight(6), weights.Weight(2).MulSaturating(3), "mul")

	huge := &weights.Reference{Db: weights.DbWeight{Read: max, Write: max}}
	assert.Equal(t, max, huge.CreateClaim(math.MaxUint32), "reference overflow")
}

func TestUnit(t *testing.T) {
	u := weights.Unit{}
	assert.Equal(t, weights.Weight(0), u.CreateClaim(128), "create")
	assert.Equal(t, weights.Weight(0), u.RevokeClaim(128), "revoke")
	assert.Equal(t, weights.Weight(0), u.TransferClaim(128), "transfer")
}
