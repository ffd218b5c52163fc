// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poe_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fixtures"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/poe"
	"github.com/bitmark-inc/poed/storage"
	"github.com/bitmark-inc/poed/weights"
)

// runs registry calls against the database the way the executive does:
// one transaction per call, committed with its events on success
type harness struct {
	t        *testing.T
	block    uint64
	trx      storage.Transaction
	journal  *event.Journal
	emitted  []event.Event
	registry *poe.Registry
}

func newHarness(t *testing.T, maxClaimLength uint32) *harness {
	fixtures.SetupTestLogger()
	if err := storage.Initialise(fixtures.DatabaseName(), storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Abort()

	h := &harness{
		t:       t,
		trx:     trx,
		journal: event.NewJournal(),
	}

	configuration := poe.Configuration{
		MaxClaimLength: maxClaimLength,
	}
	dependencies := poe.Dependencies{
		Blocks:  h,
		Proofs:  ownership.NewTable(trx, storage.Pool.Proofs),
		Events:  h.journal,
		Weights: weights.Unit{},
		Log:     logger.New(fixtures.LogCategory),
	}
	h.registry, err = poe.New(configuration, dependencies)
	if nil != err {
		t.Fatalf("registry error: %s", err)
	}
	return h
}

func (h *harness) teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func (h *harness) BlockNumber() uint64 {
	return h.block
}

func (h *harness) Deposit(e event.Event) {
	h.emitted = append(h.emitted, e)
}

// apply a single call atomically, recording its committed events
func (h *harness) run(call func() (weights.Weight, error)) error {
	h.emitted = nil

	if err := h.trx.Begin(); nil != err {
		h.t.Fatalf("begin error: %s", err)
	}

	_, err := call()
	if nil != err {
		h.trx.Abort()
		h.journal.Discard()
		return err
	}

	if err := h.trx.Commit(); nil != err {
		h.t.Fatalf("commit error: %s", err)
	}
	h.journal.Flush(h)
	return nil
}

func (h *harness) create(who uint64, raw []byte) error {
	return h.run(func() (weights.Weight, error) {
		return h.registry.CreateClaim(signed(who), raw)
	})
}

func (h *harness) revoke(who uint64, raw []byte) error {
	return h.run(func() (weights.Weight, error) {
		return h.registry.RevokeClaim(signed(who), raw)
	})
}

func (h *harness) transfer(who uint64, raw []byte, dest uint64) error {
	return h.run(func() (weights.Weight, error) {
		return h.registry.TransferClaim(signed(who), raw, accountOf(dest))
	})
}

func (h *harness) get(raw []byte) *ownership.Record {
	r, err := h.registry.Proofs(raw)
	if nil != err {
		h.t.Fatalf("proofs error: %s", err)
	}
	return r
}
