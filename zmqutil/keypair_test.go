// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "publish.public")
	privateFile := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Nil(t, err, "make key pair")

	public, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(public), "wrong public length")

	private, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(private), "wrong private length")

	err = zmqutil.MakeKeyPair(publicFile, privateFile)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrite allowed")

	_, err = zmqutil.ReadPublicKeyFile(privateFile)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private read as public")
	_, err = zmqutil.ReadPrivateKeyFile(publicFile)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public read as private")
}

func TestReadKey(t *testing.T) {
	hex32 := strings.Repeat("ab", 32)

	key, err := zmqutil.ReadPublicKey("  PUBLIC:" + hex32 + "\n")
	assert.Nil(t, err, "public")
	assert.Equal(t, byte(0xab), key[31], "wrong key")

	_, err = zmqutil.ReadPrivateKey("PRIVATE:" + hex32)
	assert.Nil(t, err, "private")

	invalid := []struct {
		text     string
		expected error
	}{
		{"PUBLIC:" + hex32[2:], fault.InvalidPublicKeyFile},
		{"PUBLIC:zz" + hex32[2:], fault.InvalidPublicKeyFile},
		{"PRIVATE:" + hex32 + "00", fault.InvalidPrivateKeyFile},
		{"SECRET:" + hex32, fault.InvalidPublicKeyFile},
		{"", fault.InvalidPublicKeyFile},
	}
	for i, item := range invalid {
		_, err := zmqutil.ReadPublicKey(item.text)
		assert.Equal(t, item.expected, err, "%d: public %q", i, item.text)
	}
}
