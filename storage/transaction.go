// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/fault"
)

// Transaction - all-or-nothing group of writes
//
// reads through the transaction observe its own staged writes
type Transaction interface {
	Begin() error
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transaction) Put(handle Handle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) PutN(handle Handle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

func (t *transaction) Delete(handle Handle, key []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

func (t *transaction) Get(handle Handle, key []byte) []byte {
	k := handle.prefixKey(key)
	value, op, found := t.cache.Get(string(k))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}

	value, err := t.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle Handle, key []byte) bool {
	k := handle.prefixKey(key)
	_, op, found := t.cache.Get(string(k))
	if found {
		return dbPut == op
	}

	value, err := t.db.Has(k, nil)
	logger.PanicIfError("transaction.Has", err)
	return value
}

// Commit - write all staged data atomically
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard all staged data
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

// must hold lock
func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
