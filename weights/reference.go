// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weights

// benchmarked base cost and per claim byte slope
const (
	createBase    Weight = 42_000_000
	createPerByte uint64 = 3_000

	revokeBase    Weight = 40_000_000
	revokePerByte uint64 = 2_000

	transferBase    Weight = 41_000_000
	transferPerByte uint64 = 2_500
)

// Reference - weights measured on reference hardware
//
// every operation performs one proof read and one proof write
type Reference struct {
	Db DbWeight
}

// NewReference - reference weights over the default database cost
func NewReference() *Reference {
	return &Reference{
		Db: RocksDbWeight,
	}
}

func (r *Reference) CreateClaim(length uint32) Weight {
	return r.weigh(createBase, createPerByte, length)
}

func (r *Reference) RevokeClaim(length uint32) Weight {
	return r.weigh(revokeBase, revokePerByte, length)
}

func (r *Reference) TransferClaim(length uint32) Weight {
	return r.weigh(transferBase, transferPerByte, length)
}

func (r *Reference) weigh(base Weight, perByte uint64, length uint32) Weight {
	return base.
		AddSaturating(Weight(perByte).MulSaturating(uint64(length))).
		AddSaturating(r.Db.Reads(1)).
		AddSaturating(r.Db.Writes(1))
}

// Unit - every operation is free
type Unit struct{}

func (Unit) CreateClaim(uint32) Weight   { return 0 }
func (Unit) RevokeClaim(uint32) Weight   { return 0 }
func (Unit) TransferClaim(uint32) Weight { return 0 }
