// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/poed/account"
)

func TestCheckClaimHex(t *testing.T) {
	claim, err := checkClaim(" 0A0b ", "")
	assert.Nil(t, err, "valid hex")
	assert.Equal(t, "0a0b", claim, "wrong claim")

	_, err = checkClaim("xyz", "")
	assert.NotNil(t, err, "invalid hex accepted")

	_, err = checkClaim("", "")
	assert.NotNil(t, err, "missing claim accepted")
}

func TestCheckClaimFile(t *testing.T) {
	f, err := ioutil.TempFile("", "claim")
	assert.Nil(t, err, "temp file")
	defer os.Remove(f.Name())

	data := []byte("a document")
	_, err = f.Write(data)
	assert.Nil(t, err, "write")
	f.Close()

	digest := sha3.Sum256(data)

	claim, err := checkClaim("", f.Name())
	assert.Nil(t, err, "file claim")
	assert.Equal(t, hex.EncodeToString(digest[:]), claim, "wrong digest")

	_, err = checkClaim("0a", f.Name())
	assert.NotNil(t, err, "both claim and file accepted")
}

func TestCheckAccount(t *testing.T) {
	id := account.FromUint64(7)

	actual, err := checkAccount("identity", id.String())
	assert.Nil(t, err, "valid account")
	assert.Equal(t, id, actual, "wrong account")

	_, err = checkAccount("identity", "")
	assert.NotNil(t, err, "empty account accepted")

	_, err = checkAccount("identity", "notbase58!")
	assert.NotNil(t, err, "invalid account accepted")
}

func TestPrintJson(t *testing.T) {
	var buffer bytes.Buffer
	err := printJson(&buffer, generateReply{Account: account.FromUint64(1), PrivateKey: "00"})
	assert.Nil(t, err, "print")
	assert.Contains(t, buffer.String(), `"account": "`+account.FromUint64(1).String()+`"`, "missing account")
	assert.Contains(t, buffer.String(), `"privateKey": "00"`, "missing key")
}
