// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poed/claim"
	"github.com/bitmark-inc/poed/fault"
)

const testMaximum = 128

func TestBoundLimits(t *testing.T) {
	tests := []struct {
		length  int
		maximum uint32
		err     error
	}{
		{0, testMaximum, nil},
		{1, testMaximum, nil},
		{testMaximum, testMaximum, nil},
		{testMaximum + 1, testMaximum, fault.ClaimTooLong},
		{0, 0, nil},
		{1, 0, fault.ClaimTooLong},
		{3, 2, fault.ClaimTooLong},
	}

	for i, item := range tests {
		raw := bytes.Repeat([]byte{0xa5}, item.length)
		b, err := claim.Bound(raw, item.maximum)
		assert.Equal(t, item.err, err, "%d: wrong error for length: %d", i, item.length)
		if nil == err {
			assert.Equal(t, raw, b.Bytes(), "%d: bytes differ", i)
			assert.Equal(t, item.length, b.Len(), "%d: wrong length", i)
		}
	}
}

func TestBoundCopiesInput(t *testing.T) {
	raw := []byte{0x00, 0x01}
	b, err := claim.Bound(raw, testMaximum)
	assert.Nil(t, err, "bound")

	raw[0] = 0xff
	assert.Equal(t, []byte{0x00, 0x01}, b.Bytes(), "bounded claim changed with input")

	out := b.Bytes()
	out[1] = 0xff
	assert.Equal(t, []byte{0x00, 0x01}, b.Bytes(), "bounded claim changed with output")
}

func TestPack(t *testing.T) {
	b, _ := claim.Bound([]byte{0x00, 0x01}, testMaximum)
	assert.Equal(t, []byte{0x02, 0x00, 0x01}, b.Pack(), "wrong pack")

	empty, _ := claim.Bound(nil, testMaximum)
	assert.Equal(t, []byte{0x00}, empty.Pack(), "wrong empty pack")

	long, _ := claim.Bound(bytes.Repeat([]byte{1}, testMaximum), testMaximum)
	assert.Equal(t, []byte{0x80, 0x01}, long.Pack()[:2], "wrong length prefix")
}

func TestStorageKey(t *testing.T) {
	a, _ := claim.Bound([]byte{0x00, 0x01}, testMaximum)
	b, _ := claim.Bound([]byte{0x00, 0x01}, testMaximum)
	c, _ := claim.Bound([]byte{0x00, 0x02}, testMaximum)
	empty, _ := claim.Bound([]byte{}, testMaximum)

	assert.Equal(t, a.StorageKey(), b.StorageKey(), "equal claims must have equal keys")
	assert.NotEqual(t, a.StorageKey(), c.StorageKey(), "different claims must have different keys")
	assert.NotEqual(t, a.StorageKey(), empty.StorageKey(), "empty claim must be distinct")

	key := a.StorageKey()
	assert.Equal(t, claim.HashLength+3, len(key), "wrong key length")
	assert.Equal(t, a.Pack(), key[claim.HashLength:], "key must end with packed claim")
}

func TestFromStorageKey(t *testing.T) {
	for _, raw := range [][]byte{{}, {0x00, 0x01}, bytes.Repeat([]byte{7}, testMaximum)} {
		b, _ := claim.Bound(raw, testMaximum)
		recovered, err := claim.FromStorageKey(b.StorageKey(), testMaximum)
		assert.Nil(t, err, "recover: %x", raw)
		assert.True(t, b.Equal(recovered), "recovered claim differs: %x", raw)
	}

	b, _ := claim.Bound([]byte{0x00, 0x01}, testMaximum)
	key := b.StorageKey()

	corrupt := append([]byte{}, key...)
	corrupt[0] ^= 0xff
	_, err := claim.FromStorageKey(corrupt, testMaximum)
	assert.Equal(t, fault.InvalidStorageKey, err, "hash mismatch not detected")

	_, err = claim.FromStorageKey(key[:len(key)-1], testMaximum)
	assert.Equal(t, fault.InvalidStorageKey, err, "truncation not detected")

	_, err = claim.FromStorageKey(key[:4], testMaximum)
	assert.Equal(t, fault.InvalidStorageKey, err, "short key not detected")

	_, err = claim.FromStorageKey(key, 1)
	assert.Equal(t, fault.ClaimTooLong, err, "smaller maximum not applied")
}
