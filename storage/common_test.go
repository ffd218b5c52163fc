// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/bitmark-inc/poed/fixtures"
	"github.com/bitmark-inc/poed/storage"
)

// common test setup routines

// configure for testing
func setup(t *testing.T) {
	fixtures.SetupTestLogger()

	err := storage.Initialise(fixtures.DatabaseName(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

// sample keys and data
var (
	testKey        = []byte("key-one")
	testData       = []byte("data-one")
	nonExistentKey = []byte("/nonexistent")
)
