// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/chain"
	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/poe"
	"github.com/bitmark-inc/poed/rpc/ratelimit"
)

// Claims
// ------

const (
	rateLimitClaims = 200
	rateBurstClaims = 100
)

// Executive - applies calls and reads committed records
type Executive interface {
	Apply(account.Origin, poe.Call) (*chain.Receipt, error)
	Query([]byte) (*ownership.Record, error)
}

// Claims - type for the RPC
//
// the sender of each request is trusted to be already authenticated
type Claims struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Executive Executive
}

// ClaimArguments - arguments for create and revoke
type ClaimArguments struct {
	Sender account.AccountId `json:"sender"` // base58
	Claim  string            `json:"claim"`  // hex
}

// TransferArguments - arguments for transfer
type TransferArguments struct {
	Sender      account.AccountId `json:"sender"`
	Claim       string            `json:"claim"`
	Destination account.AccountId `json:"destination"`
}

// ReceiptReply - result of a successful call
type ReceiptReply struct {
	Block  uint64       `json:"block"`
	Weight uint64       `json:"weight"`
	Events []EventReply `json:"events"`
}

// EventReply - an emitted event
type EventReply struct {
	Name     string              `json:"name"`
	Accounts []account.AccountId `json:"accounts"`
	Claim    string              `json:"claim"`
}

// GetArguments - arguments for get
type GetArguments struct {
	Claim string `json:"claim"`
}

// GetReply - the committed record, Found is false if the claim is not registered
type GetReply struct {
	Found     bool              `json:"found"`
	Owner     account.AccountId `json:"owner,omitempty"`
	CreatedAt uint64            `json:"createdAt"`
}

// New - create the RPC service
func New(log *logger.L, executive Executive) *Claims {
	return &Claims{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitClaims, rateBurstClaims),
		Executive: executive,
	}
}

// Create - register a claim to the sender
func (c *Claims) Create(arguments *ClaimArguments, reply *ReceiptReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	return c.apply(arguments.Sender, poe.CreateClaimFunction, arguments.Claim, "", reply)
}

// Revoke - remove a claim owned by the sender
func (c *Claims) Revoke(arguments *ClaimArguments, reply *ReceiptReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	return c.apply(arguments.Sender, poe.RevokeClaimFunction, arguments.Claim, "", reply)
}

// Transfer - give a claim owned by the sender to the destination
func (c *Claims) Transfer(arguments *TransferArguments, reply *ReceiptReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if "" == arguments.Destination {
		return fault.InvalidAccount
	}
	return c.apply(arguments.Sender, poe.TransferClaimFunction, arguments.Claim, arguments.Destination, reply)
}

// Get - owner and block of a registered claim
func (c *Claims) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	raw, err := hex.DecodeString(arguments.Claim)
	if nil != err {
		return fault.InvalidClaim
	}

	record, err := c.Executive.Query(raw)
	if nil != err {
		return err
	}
	if nil == record {
		reply.Found = false
		return nil
	}

	reply.Found = true
	reply.Owner = record.Owner
	reply.CreatedAt = record.CreatedAt
	return nil
}

func (c *Claims) apply(sender account.AccountId, function string, claim string, dest account.AccountId, reply *ReceiptReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	raw, err := hex.DecodeString(claim)
	if nil != err {
		return fault.InvalidClaim
	}

	c.Log.Debugf("%s: sender: %s  claim: %x", function, sender, raw)

	call := poe.Call{
		Function: function,
		Claim:    raw,
		Dest:     dest,
	}
	receipt, err := c.Executive.Apply(account.Signed(sender), call)
	if nil != err {
		return err
	}

	reply.Block = receipt.Block
	reply.Weight = uint64(receipt.Weight)
	reply.Events = make([]EventReply, 0, len(receipt.Events))
	for _, e := range receipt.Events {
		reply.Events = append(reply.Events, eventReply(e))
	}
	return nil
}

func eventReply(e event.Event) EventReply {
	switch ev := e.(type) {
	case *event.ClaimCreated:
		return EventReply{
			Name:     ev.Name(),
			Accounts: []account.AccountId{ev.Who},
			Claim:    hex.EncodeToString(ev.Claim),
		}
	case *event.ClaimRevoked:
		return EventReply{
			Name:     ev.Name(),
			Accounts: []account.AccountId{ev.Who},
			Claim:    hex.EncodeToString(ev.Claim),
		}
	case *event.ClaimTransferred:
		return EventReply{
			Name:     ev.Name(),
			Accounts: []account.AccountId{ev.From, ev.To},
			Claim:    hex.EncodeToString(ev.Claim),
		}
	default:
		return EventReply{
			Name: e.Name(),
		}
	}
}
