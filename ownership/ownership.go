// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/poed/claim"
	"github.com/bitmark-inc/poed/storage"
)

// Proofs - the ownership table as used by the registry
type Proofs interface {
	Get(claim.Bounded) (*Record, error)
	Contains(claim.Bounded) bool
	Insert(claim.Bounded, Record)
	Remove(claim.Bounded)
}

type table struct {
	trx  storage.Transaction
	pool storage.Handle
}

// NewTable - ownership table whose writes go to an open transaction
func NewTable(trx storage.Transaction, pool storage.Handle) Proofs {
	return &table{
		trx:  trx,
		pool: pool,
	}
}

// Get - nil, nil if the claim is not registered
func (t *table) Get(k claim.Bounded) (*Record, error) {
	return unpack(t.trx.Get(t.pool, k.StorageKey()))
}

func (t *table) Contains(k claim.Bounded) bool {
	return t.trx.Has(t.pool, k.StorageKey())
}

func (t *table) Insert(k claim.Bounded, r Record) {
	t.trx.Put(t.pool, k.StorageKey(), r.Pack())
}

// Remove - deleting an absent claim is not an error
func (t *table) Remove(k claim.Bounded) {
	t.trx.Delete(t.pool, k.StorageKey())
}

// Get - read a committed record outside of any transaction
func Get(pool storage.Handle, k claim.Bounded) (*Record, error) {
	return unpack(pool.Get(k.StorageKey()))
}

func unpack(packed []byte) (*Record, error) {
	if nil == packed {
		return nil, nil
	}
	return PackedRecord(packed).Unpack()
}
