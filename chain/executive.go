// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/claim"
	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/poe"
	"github.com/bitmark-inc/poed/storage"
	"github.com/bitmark-inc/poed/weights"
)

// Receipt - outcome of an applied call
//
// Events is empty unless the call succeeded
type Receipt struct {
	Block  uint64         `json:"block"`
	Weight weights.Weight `json:"weight"`
	Events []event.Event  `json:"-"`
}

// the registry reads the block number while apply is held, so
// the height cannot change during a call
type blockSource struct{}

func (blockSource) BlockNumber() uint64 {
	return Height()
}

// Apply - execute a call atomically
//
// a receipt is returned even for a failed call, since the weight is
// charged regardless of the outcome
func Apply(origin account.Origin, call poe.Call) (*Receipt, error) {
	globalData.apply.Lock()
	defer globalData.apply.Unlock()

	globalData.RLock()
	initialised := globalData.initialised
	registry := globalData.registry
	journal := globalData.journal
	sink := globalData.sink
	log := globalData.log
	globalData.RUnlock()

	if !initialised {
		return nil, fault.NotInitialised
	}

	if err := globalData.trx.Begin(); nil != err {
		return nil, err
	}

	receipt := &Receipt{
		Block: Height(),
	}

	w, err := registry.Dispatch(origin, call)
	receipt.Weight = w

	if nil != err {
		globalData.trx.Abort()
		journal.Discard()
		log.Debugf("block: %d  origin: %s  call: %s  error: %s", receipt.Block, origin, call.Function, err)
		return receipt, err
	}

	if err := globalData.trx.Commit(); nil != err {
		journal.Discard()
		log.Criticalf("block: %d  call: %s  commit error: %s", receipt.Block, call.Function, err)
		return receipt, err
	}

	receipt.Events = journal.Flush(sink)
	for _, e := range receipt.Events {
		log.Infof("block: %d  event: %s", receipt.Block, e)
	}
	return receipt, nil
}

// Query - committed record of a claim, nil if not registered
func Query(raw []byte) (*ownership.Record, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	k, err := claim.Bound(raw, globalData.maxClaimLength)
	if nil != err {
		return nil, err
	}
	return ownership.Get(storage.Pool.Proofs, k)
}

// Weight - declared cost of a call
func Weight(call poe.Call) (weights.Weight, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	return call.Weight(globalData.weights)
}

// MaxClaimLength - longest claim accepted by the registry
func MaxClaimLength() uint32 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.maxClaimLength
}

// Name - name of the current chain
func Name() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.name
}

// Service - the executive as a value, for consumers that take interfaces
type Service struct{}

func (Service) Apply(origin account.Origin, call poe.Call) (*Receipt, error) {
	return Apply(origin, call)
}

func (Service) Query(raw []byte) (*ownership.Record, error) {
	return Query(raw)
}

func (Service) Name() string {
	return Name()
}

func (Service) Height() uint64 {
	return Height()
}

func (Service) MaxClaimLength() uint32 {
	return MaxClaimLength()
}
