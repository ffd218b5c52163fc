// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poe

import (
	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/weights"
)

// names of the dispatchable functions
const (
	CreateClaimFunction   = "create_claim"
	RevokeClaimFunction   = "revoke_claim"
	TransferClaimFunction = "transfer_claim"
)

// Call - an encoded registry call
//
// Dest is only used by transfer
type Call struct {
	Function string            `json:"function"`
	Claim    []byte            `json:"claim"`
	Dest     account.AccountId `json:"dest,omitempty"`
}

// Weight - declared cost of the call before it is executed
func (c Call) Weight(info weights.WeightInfo) (weights.Weight, error) {
	n := claimLength(c.Claim)
	switch c.Function {
	case CreateClaimFunction:
		return info.CreateClaim(n), nil
	case RevokeClaimFunction:
		return info.RevokeClaim(n), nil
	case TransferClaimFunction:
		return info.TransferClaim(n), nil
	default:
		return 0, fault.UnknownCall
	}
}

// Dispatch - route a call to its handler
func (r *Registry) Dispatch(origin account.Origin, call Call) (weights.Weight, error) {
	switch call.Function {
	case CreateClaimFunction:
		return r.CreateClaim(origin, call.Claim)
	case RevokeClaimFunction:
		return r.RevokeClaim(origin, call.Claim)
	case TransferClaimFunction:
		return r.TransferClaim(origin, call.Claim, call.Dest)
	default:
		r.log.Warnf("unknown function: %q", call.Function)
		return 0, fault.UnknownCall
	}
}
