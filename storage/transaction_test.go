// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/fixtures"
	"github.com/bitmark-inc/poed/storage"
)

func TestCommit(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	trx.Put(pool, testKey, testData)
	assert.Equal(t, testData, trx.Get(pool, testKey), "staged value not visible in transaction")
	assert.True(t, trx.Has(pool, testKey), "staged key not present in transaction")
	assert.Nil(t, pool.Get(testKey), "staged value visible before commit")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "transaction still in use after commit")

	assert.Equal(t, testData, pool.Get(testKey), "committed value not visible")
	assert.True(t, pool.Has(testKey), "committed key not present")
	assert.False(t, pool.Has(nonExistentKey), "unexpected key")
}

func TestAbort(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(pool, testKey, testData)
	trx.Abort()

	assert.Nil(t, pool.Get(testKey), "aborted value was written")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
	assert.Nil(t, trx.Get(pool, testKey), "aborted value still staged")
	trx.Abort()
}

func TestDeleteHidesCommittedValue(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData

	trx, _ := storage.NewDBTransaction()
	trx.Put(pool, testKey, testData)
	_ = trx.Commit()

	trx, _ = storage.NewDBTransaction()
	trx.Delete(pool, testKey)
	assert.Nil(t, trx.Get(pool, testKey), "deleted value visible in transaction")
	assert.False(t, trx.Has(pool, testKey), "deleted key present in transaction")
	assert.Equal(t, testData, pool.Get(testKey), "delete visible before commit")

	// delete of an absent key is harmless
	trx.Delete(pool, nonExistentKey)

	_ = trx.Commit()
	assert.Nil(t, pool.Get(testKey), "delete not committed")
}

func TestBeginTwice(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first begin")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionInUse, err, "second begin must fail")

	trx.Abort()
	_, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
}

func TestCommitWithoutBegin(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	_ = trx.Commit()
	assert.Equal(t, fault.TransactionNotInUse, trx.Commit(), "second commit must fail")
}

func TestPutN(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.Chain

	trx, _ := storage.NewDBTransaction()
	_, found := trx.GetN(pool, testKey)
	assert.False(t, found, "unexpected number")

	trx.PutN(pool, testKey, 0x0102030405060708)
	n, found := trx.GetN(pool, testKey)
	assert.True(t, found, "staged number missing")
	assert.Equal(t, uint64(0x0102030405060708), n, "wrong staged number")
	_ = trx.Commit()

	n, found = pool.GetN(testKey)
	assert.True(t, found, "committed number missing")
	assert.Equal(t, uint64(0x0102030405060708), n, "wrong committed number")
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, pool.Get(testKey), "not big endian")
}

func TestPoolsAreSeparate(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.TestData, testKey, testData)
	_ = trx.Commit()

	assert.Nil(t, storage.Pool.Proofs.Get(testKey), "key leaked into another pool")
	assert.False(t, storage.Pool.Chain.Has(testKey), "key leaked into another pool")
}

func TestReopen(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.TestData, testKey, testData)
	_ = trx.Commit()

	err := storage.Initialise(fixtures.DatabaseName(), storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "double initialise")

	storage.Finalise()
	assert.Nil(t, storage.Pool.TestData, "pools not cleared")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "transaction without database")

	err = storage.Initialise(fixtures.DatabaseName(), storage.ReadOnly)
	assert.Nil(t, err, "read only reopen")
	assert.Equal(t, testData, storage.Pool.TestData.Get(testKey), "data not persisted")
}
