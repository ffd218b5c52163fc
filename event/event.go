// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/poed/account"
)

// event names as published
const (
	ClaimCreatedName     = "ClaimCreated"
	ClaimRevokedName     = "ClaimRevoked"
	ClaimTransferredName = "ClaimTransferred"
)

// Event - a registry state change notification
type Event interface {
	Name() string
	Pack() [][]byte
	String() string
}

// ClaimCreated - who registered claim
type ClaimCreated struct {
	Who   account.AccountId
	Claim []byte
}

// ClaimRevoked - who removed claim
type ClaimRevoked struct {
	Who   account.AccountId
	Claim []byte
}

// ClaimTransferred - ownership of claim moved from one account to another
type ClaimTransferred struct {
	From  account.AccountId
	To    account.AccountId
	Claim []byte
}

// NewClaimCreated - the claim bytes are copied
func NewClaimCreated(who account.AccountId, claim []byte) *ClaimCreated {
	return &ClaimCreated{
		Who:   who,
		Claim: duplicate(claim),
	}
}

// NewClaimRevoked - the claim bytes are copied
func NewClaimRevoked(who account.AccountId, claim []byte) *ClaimRevoked {
	return &ClaimRevoked{
		Who:   who,
		Claim: duplicate(claim),
	}
}

// NewClaimTransferred - the claim bytes are copied
func NewClaimTransferred(from account.AccountId, to account.AccountId, claim []byte) *ClaimTransferred {
	return &ClaimTransferred{
		From:  from,
		To:    to,
		Claim: duplicate(claim),
	}
}

func (e *ClaimCreated) Name() string {
	return ClaimCreatedName
}

func (e *ClaimCreated) Pack() [][]byte {
	return [][]byte{e.Who.Bytes(), duplicate(e.Claim)}
}

func (e *ClaimCreated) String() string {
	return fmt.Sprintf("%s(%s, %s)", ClaimCreatedName, e.Who, hex.EncodeToString(e.Claim))
}

func (e *ClaimRevoked) Name() string {
	return ClaimRevokedName
}

func (e *ClaimRevoked) Pack() [][]byte {
	return [][]byte{e.Who.Bytes(), duplicate(e.Claim)}
}

func (e *ClaimRevoked) String() string {
	return fmt.Sprintf("%s(%s, %s)", ClaimRevokedName, e.Who, hex.EncodeToString(e.Claim))
}

func (e *ClaimTransferred) Name() string {
	return ClaimTransferredName
}

func (e *ClaimTransferred) Pack() [][]byte {
	return [][]byte{e.From.Bytes(), e.To.Bytes(), duplicate(e.Claim)}
}

func (e *ClaimTransferred) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", ClaimTransferredName, e.From, e.To, hex.EncodeToString(e.Claim))
}

func duplicate(b []byte) []byte {
	d := make([]byte, len(b))
	copy(d, b)
	return d
}
