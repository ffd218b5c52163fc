// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/background"
	"github.com/bitmark-inc/poed/chain"
	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/fixtures"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/poe"
	"github.com/bitmark-inc/poed/storage"
	"github.com/bitmark-inc/poed/weights"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) Deposit(e event.Event) {
	r.events = append(r.events, e)
}

func setup(t *testing.T, sink event.Sink) {
	fixtures.SetupTestLogger()
	if err := storage.Initialise(fixtures.DatabaseName(), storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	configuration := poe.Configuration{
		MaxClaimLength: fixtures.MaxClaimLength,
	}
	if err := chain.Initialise(chain.Local, configuration, sink, nil); nil != err {
		t.Fatalf("chain initialise error: %s", err)
	}
}

func teardown() {
	_ = chain.Finalise()
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func create(raw []byte) poe.Call {
	return poe.Call{Function: poe.CreateClaimFunction, Claim: raw}
}

func TestInitialiseTwice(t *testing.T) {
	setup(t, &recorder{})
	defer teardown()

	err := chain.Initialise(chain.Local, poe.Configuration{}, &recorder{}, nil)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestInitialiseInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := chain.Initialise("bitcoin", poe.Configuration{}, &recorder{}, nil)
	assert.Equal(t, fault.InvalidChain, err, "invalid chain")

	err = chain.Initialise(chain.Local, poe.Configuration{}, nil, nil)
	assert.Equal(t, fault.MissingParameters, err, "missing sink")

	err = chain.Initialise(chain.Local, poe.Configuration{}, &recorder{}, nil)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "no database")

	_, err = chain.Apply(account.Signed(fixtures.Alice), poe.Call{})
	assert.Equal(t, fault.NotInitialised, err, "apply before initialise")
}

func TestApplyCommitsWithEvents(t *testing.T) {
	r := &recorder{}
	setup(t, r)
	defer teardown()

	receipt, err := chain.Apply(account.Signed(fixtures.Alice), create(fixtures.Claim()))
	assert.Nil(t, err, "apply")
	assert.Equal(t, uint64(0), receipt.Block, "wrong block")
	assert.Equal(t, weights.NewReference().CreateClaim(2), receipt.Weight, "wrong weight")
	assert.Equal(t, []event.Event{event.NewClaimCreated(fixtures.Alice, fixtures.Claim())}, receipt.Events, "wrong receipt events")
	assert.Equal(t, receipt.Events, r.events, "wrong sink events")

	record, err := chain.Query(fixtures.Claim())
	assert.Nil(t, err, "query")
	assert.Equal(t, &ownership.Record{Owner: fixtures.Alice, CreatedAt: 0}, record, "wrong record")
}

func TestApplyFailureLeavesNothing(t *testing.T) {
	r := &recorder{}
	setup(t, r)
	defer teardown()

	_, err := chain.Apply(account.Signed(fixtures.Alice), create(fixtures.Claim()))
	assert.Nil(t, err, "apply")

	height, err := chain.NewBlock()
	assert.Nil(t, err, "new block")
	assert.Equal(t, uint64(1), height, "wrong height")

	transfer := poe.Call{
		Function: poe.TransferClaimFunction,
		Claim:    fixtures.Claim(),
		Dest:     fixtures.Charlie,
	}
	receipt, err := chain.Apply(account.Signed(fixtures.Bob), transfer)
	assert.Equal(t, fault.NotClaimOwner, err, "transfer by other account")
	assert.Equal(t, weights.NewReference().TransferClaim(2), receipt.Weight, "weight of failed call")
	assert.Equal(t, 0, len(receipt.Events), "failed call has events")
	assert.Equal(t, 1, len(r.events), "failed call deposited events")

	record, _ := chain.Query(fixtures.Claim())
	assert.Equal(t, &ownership.Record{Owner: fixtures.Alice, CreatedAt: 0}, record, "record changed")

	// the transaction is free for the next call
	receipt, err = chain.Apply(account.Signed(fixtures.Alice), transfer)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, uint64(1), receipt.Block, "wrong block")

	record, _ = chain.Query(fixtures.Claim())
	assert.Equal(t, &ownership.Record{Owner: fixtures.Charlie, CreatedAt: 1}, record, "wrong record")
}

func TestUnknownCall(t *testing.T) {
	setup(t, &recorder{})
	defer teardown()

	_, err := chain.Apply(account.Signed(fixtures.Alice), poe.Call{Function: "remark"})
	assert.Equal(t, fault.UnknownCall, err, "unknown call")

	_, err = chain.Weight(poe.Call{Function: "remark"})
	assert.Equal(t, fault.UnknownCall, err, "unknown call weight")
}

func TestQueryTooLong(t *testing.T) {
	setup(t, &recorder{})
	defer teardown()

	_, err := chain.Query(make([]byte, fixtures.MaxClaimLength+1))
	assert.Equal(t, fault.ClaimTooLong, err, "long query")

	assert.Equal(t, uint32(fixtures.MaxClaimLength), chain.MaxClaimLength(), "wrong maximum")
	assert.Equal(t, chain.Local, chain.Name(), "wrong name")
}

func TestHeightPersists(t *testing.T) {
	setup(t, &recorder{})
	defer teardown()

	for i := 1; i <= 3; i += 1 {
		height, err := chain.NewBlock()
		assert.Nil(t, err, "new block")
		assert.Equal(t, uint64(i), height, "wrong height")
	}

	assert.Nil(t, chain.Finalise(), "finalise")
	storage.Finalise()

	if err := storage.Initialise(fixtures.DatabaseName(), storage.ReadWrite); nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	err := chain.Initialise(chain.Testing, poe.Configuration{MaxClaimLength: 2}, &recorder{}, prometheus.NewRegistry())
	assert.Nil(t, err, "reinitialise")
	assert.Equal(t, uint64(3), chain.Height(), "height not restored")
}

func TestProducer(t *testing.T) {
	setup(t, &recorder{})
	defer teardown()

	p := background.Start(background.Processes{chain.NewProducer(5 * time.Millisecond)}, nil)
	time.Sleep(100 * time.Millisecond)
	p.Stop()

	assert.True(t, chain.Height() > 0, "no blocks produced")
}
