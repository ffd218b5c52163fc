// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/poed/fault"
)

// miscellaneous constants
const (
	checksumLength = 4

	// MaximumLength - longest identifier accepted from the host
	MaximumLength = 64
)

// AccountId - opaque identifier of a principal
//
// only equality is meaningful; the bytes are held in a string so
// that identifiers are comparable with ==
type AccountId string

// FromBytes - make an account from its raw identifier bytes
func FromBytes(b []byte) (AccountId, error) {
	if 0 == len(b) || len(b) > MaximumLength {
		return "", fault.InvalidAccount
	}
	return AccountId(b), nil
}

// FromUint64 - make an account from a small integer
//
// eight byte big endian, the form used by local development chains
func FromUint64(n uint64) AccountId {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return AccountId(b)
}

// FromBase58 - decode the text form: base58(id ++ checksum)
func FromBase58(s string) (AccountId, error) {
	decoded, err := base58.Decode(s)
	if nil != err || len(decoded) <= checksumLength {
		return "", fault.InvalidAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return "", fault.InvalidAccount
	}
	return FromBytes(decoded[:checksumStart])
}

// Generate - create an account from a fresh ed25519 key
//
// the public key is the account identifier; the private key is only
// returned for the caller to keep, it is never used by the registry
func Generate(rand io.Reader) (AccountId, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand)
	if nil != err {
		return "", nil, err
	}
	return AccountId(publicKey), privateKey, nil
}

// Bytes - raw identifier
func (a AccountId) Bytes() []byte {
	return []byte(a)
}

// String - base58 text form with checksum
func (a AccountId) String() string {
	checksum := sha3.Sum256([]byte(a))
	buffer := make([]byte, 0, len(a)+checksumLength)
	buffer = append(buffer, a...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its base58 text form
func (a AccountId) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (a *AccountId) UnmarshalText(s []byte) error {
	id, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = id
	return nil
}
