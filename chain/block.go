// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/storage"
)

// Height - current block number
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.height
}

// StoredHeight - block number last persisted to storage
//
// zero for a new database
func StoredHeight() uint64 {
	height, found := storage.Pool.Chain.GetN(heightKey)
	if !found {
		return 0
	}
	return height
}

// NewBlock - advance and persist the block number
//
// waits for any call in progress to finish
func NewBlock() (uint64, error) {
	globalData.apply.Lock()
	defer globalData.apply.Unlock()

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	height := globalData.height + 1

	trx := globalData.trx
	if err := trx.Begin(); nil != err {
		return globalData.height, err
	}
	trx.PutN(storage.Pool.Chain, heightKey, height)
	if err := trx.Commit(); nil != err {
		globalData.log.Criticalf("block: %d  commit error: %s", height, err)
		return globalData.height, err
	}

	globalData.height = height
	globalData.setGauge()

	globalData.log.Debugf("new block: %d", height)
	return height, nil
}
