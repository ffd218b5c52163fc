// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common data and setup for tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"

	// MaxClaimLength - the registry limit used by most tests
	MaxClaimLength = 128
)

// accounts of the registry scenarios
var (
	Alice   = account.FromUint64(1)
	Bob     = account.FromUint64(2)
	Charlie = account.FromUint64(23)
)

// Claim - the claim of the registry scenarios
func Claim() []byte {
	return []byte{0x00, 0x01}
}

// SetupTestLogger - start a file logger in the test directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the test directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// DatabaseName - database location inside the test directory
func DatabaseName() string {
	return dir + "/test.leveldb"
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
