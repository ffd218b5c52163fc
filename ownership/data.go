// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/util"
)

// from storage/doc.go:
//
// Proofs:
//
//   P ++ key hash ++ claim   - ownership record of a registered claim
//                              data: owner ++ block number
//
//   owner        = varint64(length) ++ account id bytes
//   block number = big endian uint64

const (
	uint64ByteSize = 8
)

// Record - owner of a claim and the block in which it was last written
//
// CreatedAt is replaced when the claim is transferred
type Record struct {
	Owner     account.AccountId `json:"owner"`
	CreatedAt uint64            `json:"createdAt"`
}

// PackedRecord - packed data to store in database
type PackedRecord []byte

// Pack - pack record data to byte slice
func (r Record) Pack() PackedRecord {
	owner := r.Owner.Bytes()

	packed := make(PackedRecord, 0, util.Varint64MaximumBytes+len(owner)+uint64ByteSize)
	packed = append(packed, util.ToVarint64(uint64(len(owner)))...)
	packed = append(packed, owner...)

	bn := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(bn, r.CreatedAt)
	return append(packed, bn...)
}

// Unpack - unpack record data
func (packed PackedRecord) Unpack() (*Record, error) {
	ownerLength, n := util.ClippedVarint64(packed, 1, account.MaximumLength)
	if 0 == n {
		return nil, fault.NotOwnerDataPack
	}

	if n+ownerLength+uint64ByteSize != len(packed) {
		return nil, fault.NotOwnerDataPack
	}

	owner, err := account.FromBytes(packed[n : n+ownerLength])
	if nil != err {
		return nil, fault.NotOwnerDataPack
	}

	r := &Record{
		Owner:     owner,
		CreatedAt: binary.BigEndian.Uint64(packed[n+ownerLength:]),
	}
	return r, nil
}
