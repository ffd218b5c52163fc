// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/poed/fault"
)

type originKind int

// origin kinds
const (
	noneOrigin originKind = iota
	rootOrigin
	signedOrigin
)

// Origin - who initiated a call, as resolved by the host
type Origin struct {
	kind   originKind
	signer AccountId
}

// Signed - origin of a call authenticated as the given account
func Signed(id AccountId) Origin {
	return Origin{
		kind:   signedOrigin,
		signer: id,
	}
}

// Root - privileged origin with no associated account
func Root() Origin {
	return Origin{kind: rootOrigin}
}

// None - unsigned origin
func None() Origin {
	return Origin{kind: noneOrigin}
}

// EnsureSigned - return the signing account or fault.BadOrigin
//
// a signer that could not be stored as an owner is rejected
func EnsureSigned(origin Origin) (AccountId, error) {
	if signedOrigin != origin.kind {
		return "", fault.BadOrigin
	}
	if _, err := FromBytes(origin.signer.Bytes()); nil != err {
		return "", fault.BadOrigin
	}
	return origin.signer, nil
}

func (origin Origin) String() string {
	switch origin.kind {
	case signedOrigin:
		return "signed(" + origin.signer.String() + ")"
	case rootOrigin:
		return "root"
	default:
		return "none"
	}
}
