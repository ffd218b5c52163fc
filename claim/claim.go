// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/util"
)

// HashLength - bytes of blake2b digest prefixed to each storage key
const HashLength = 16

// Bounded - a claim whose length is known to be within the configured maximum
//
// only Bound and FromStorageKey can construct a non-empty value
type Bounded struct {
	data []byte
}

// Bound - accept a raw claim if it fits within maximum bytes
//
// the bytes are copied so the caller may reuse its buffer
func Bound(raw []byte, maximum uint32) (Bounded, error) {
	if uint64(len(raw)) > uint64(maximum) {
		return Bounded{}, fault.ClaimTooLong
	}
	data := make([]byte, len(raw))
	copy(data, raw)
	return Bounded{data: data}, nil
}

// Len - number of claim bytes
func (b Bounded) Len() int {
	return len(b.data)
}

// Bytes - a copy of the claim bytes
func (b Bounded) Bytes() []byte {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return data
}

// Equal - byte-wise equality
func (b Bounded) Equal(other Bounded) bool {
	return bytes.Equal(b.data, other.data)
}

// Pack - canonical encoding: varint64(length) ++ bytes
func (b Bounded) Pack() []byte {
	packed := util.ToVarint64(uint64(len(b.data)))
	return append(packed, b.data...)
}

// StorageKey - blake2b-128(packed) ++ packed
//
// the digest spreads keys across the database while the trailing
// packed claim keeps the key reversible
func (b Bounded) StorageKey() []byte {
	packed := b.Pack()
	digest := keyHash(packed)
	return append(digest, packed...)
}

// FromStorageKey - recover a claim from a key made by StorageKey
func FromStorageKey(key []byte, maximum uint32) (Bounded, error) {
	if len(key) < HashLength+1 {
		return Bounded{}, fault.InvalidStorageKey
	}
	packed := key[HashLength:]

	n, count := util.FromVarint64(packed)
	if 0 == count || uint64(len(packed)-count) != n {
		return Bounded{}, fault.InvalidStorageKey
	}
	if !bytes.Equal(key[:HashLength], keyHash(packed)) {
		return Bounded{}, fault.InvalidStorageKey
	}
	return Bound(packed[count:], maximum)
}

// String - hex form for logging
func (b Bounded) String() string {
	return hex.EncodeToString(b.data)
}

func keyHash(packed []byte) []byte {
	h, err := blake2b.New(HashLength, nil)
	if nil != err {
		// only fails for a size outside 1..64 or a long key
		panic(err)
	}
	h.Write(packed)
	return h.Sum(nil)
}
