// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weights

import (
	"math"
)

// Weight - declared execution cost of a call
type Weight uint64

// WeightInfo - cost of each registry operation by claim length
type WeightInfo interface {
	CreateClaim(length uint32) Weight
	RevokeClaim(length uint32) Weight
	TransferClaim(length uint32) Weight
}

// DbWeight - cost of a single database access
type DbWeight struct {
	Read  Weight
	Write Weight
}

// RocksDbWeight - database access cost used by the reference weights
var RocksDbWeight = DbWeight{
	Read:  25_000_000,
	Write: 100_000_000,
}

// Reads - cost of n reads
func (d DbWeight) Reads(n uint64) Weight {
	return d.Read.MulSaturating(n)
}

// Writes - cost of n writes
func (d DbWeight) Writes(n uint64) Weight {
	return d.Write.MulSaturating(n)
}

// AddSaturating - sum clipped at the maximum weight
func (w Weight) AddSaturating(v Weight) Weight {
	if w > math.MaxUint64-v {
		return math.MaxUint64
	}
	return w + v
}

// MulSaturating - product clipped at the maximum weight
func (w Weight) MulSaturating(n uint64) Weight {
	if 0 == n || 0 == w {
		return 0
	}
	if uint64(w) > math.MaxUint64/n {
		return math.MaxUint64
	}
	return Weight(uint64(w) * n)
}
