// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. block number = big endian uint64 (8 bytes)
// 4. claim        = varint64(length) ++ claim bytes
// 5. key hash     = 16 byte BLAKE2b-128(claim)
// 6. owner        = varint64(length) ++ account id bytes
//
// Proofs:
//
//   P ++ key hash ++ claim     - ownership record of a registered claim
//                                data: owner ++ block number
//
// Chain:
//
//   C ++ "height"              - number of the block currently being built
//                                data: block number
//
// Testing:
//   Z ++ key                   - testing data
package storage
