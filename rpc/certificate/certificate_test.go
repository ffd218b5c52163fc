// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/fixtures"
	"github.com/bitmark-inc/poed/rpc/certificate"
)

func TestMakeAndGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	certificateFile := filepath.Join("testing", "rpc.crt")
	keyFile := filepath.Join("testing", "rpc.key")

	err := certificate.MakeSelfSigned("test", certificateFile, keyFile, false, []string{"127.0.0.1"})
	assert.Nil(t, err, "make certificate")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "overwrite allowed")

	cer, _ := ioutil.ReadFile(certificateFile)
	key, _ := ioutil.ReadFile(keyFile)

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cer), string(key))
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)
	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "invalid pair accepted")
}
