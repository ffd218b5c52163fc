// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poe

import (
	"math"

	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/claim"
	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/weights"
)

// CreateClaim - register an unowned claim to the signer
func (r *Registry) CreateClaim(origin account.Origin, raw []byte) (weights.Weight, error) {
	w := r.weights.CreateClaim(claimLength(raw))
	err := r.createClaim(origin, raw)
	r.metrics.observe(CreateClaimFunction, len(raw), err)
	return w, err
}

func (r *Registry) createClaim(origin account.Origin, raw []byte) error {
	sender, err := account.EnsureSigned(origin)
	if nil != err {
		return err
	}

	k, err := claim.Bound(raw, r.maxClaimLength)
	if nil != err {
		r.log.Debugf("create: claim length: %d exceeds: %d", len(raw), r.maxClaimLength)
		return err
	}

	if r.proofs.Contains(k) {
		return fault.ProofAlreadyExist
	}

	block := r.blocks.BlockNumber()
	r.proofs.Insert(k, ownership.Record{
		Owner:     sender,
		CreatedAt: block,
	})
	r.events.Deposit(event.NewClaimCreated(sender, raw))

	r.log.Infof("created: %s  owner: %s  block: %d", k, sender, block)
	return nil
}

// RevokeClaim - remove a claim owned by the signer
func (r *Registry) RevokeClaim(origin account.Origin, raw []byte) (weights.Weight, error) {
	w := r.weights.RevokeClaim(claimLength(raw))
	err := r.revokeClaim(origin, raw)
	r.metrics.observe(RevokeClaimFunction, len(raw), err)
	return w, err
}

func (r *Registry) revokeClaim(origin account.Origin, raw []byte) error {
	sender, k, err := r.signedAndBound(origin, raw)
	if nil != err {
		return err
	}
	if err := r.owned(sender, k); nil != err {
		return err
	}

	r.proofs.Remove(k)
	r.events.Deposit(event.NewClaimRevoked(sender, raw))

	r.log.Infof("revoked: %s  owner: %s", k, sender)
	return nil
}

// TransferClaim - give a claim owned by the signer to dest
//
// the record is rewritten so its block number becomes the current one
func (r *Registry) TransferClaim(origin account.Origin, raw []byte, dest account.AccountId) (weights.Weight, error) {
	w := r.weights.TransferClaim(claimLength(raw))
	err := r.transferClaim(origin, raw, dest)
	r.metrics.observe(TransferClaimFunction, len(raw), err)
	return w, err
}

func (r *Registry) transferClaim(origin account.Origin, raw []byte, dest account.AccountId) error {
	sender, k, err := r.signedAndBound(origin, raw)
	if nil != err {
		return err
	}

	// the new owner must round trip through the packed record
	if _, err := account.FromBytes(dest.Bytes()); nil != err {
		r.log.Debugf("transfer: invalid destination length: %d", len(dest))
		return fault.InvalidAccount
	}

	if err := r.owned(sender, k); nil != err {
		return err
	}

	block := r.blocks.BlockNumber()
	r.proofs.Insert(k, ownership.Record{
		Owner:     dest,
		CreatedAt: block,
	})
	r.events.Deposit(event.NewClaimTransferred(sender, dest, raw))

	r.log.Infof("transferred: %s  from: %s  to: %s  block: %d", k, sender, dest, block)
	return nil
}

// Proofs - read only lookup, nil if the claim is not registered
func (r *Registry) Proofs(raw []byte) (*ownership.Record, error) {
	k, err := claim.Bound(raw, r.maxClaimLength)
	if nil != err {
		return nil, err
	}
	return r.proofs.Get(k)
}

// common checks of revoke and transfer: a signed origin and a bounded claim
func (r *Registry) signedAndBound(origin account.Origin, raw []byte) (account.AccountId, claim.Bounded, error) {
	sender, err := account.EnsureSigned(origin)
	if nil != err {
		return "", claim.Bounded{}, err
	}

	k, err := claim.Bound(raw, r.maxClaimLength)
	if nil != err {
		r.log.Debugf("claim length: %d exceeds: %d", len(raw), r.maxClaimLength)
		return "", claim.Bounded{}, err
	}
	return sender, k, nil
}

// the claim must exist and belong to sender
func (r *Registry) owned(sender account.AccountId, k claim.Bounded) error {
	record, err := r.proofs.Get(k)
	if nil != err {
		r.log.Errorf("claim: %s  record error: %s", k, err)
		return err
	}
	if nil == record {
		return fault.ClaimNotExist
	}
	if record.Owner != sender {
		return fault.NotClaimOwner
	}
	return nil
}

func claimLength(raw []byte) uint32 {
	if uint64(len(raw)) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(len(raw))
}
