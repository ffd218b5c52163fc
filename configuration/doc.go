// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse the Lua configuration file of poed
//
// most of base Lua is available such as reading files to set key data
// and os.getenv to extract environment supplied items.  The file must
// return a table, for example:
//
//   local M = {}
//   M.data_directory = "."
//   M.chain = "local"
//   M.registry = { max_claim_length = 128, block_interval = 6 }
//   M.client_rpc = { maximum_connections = 50, listen = { "127.0.0.1:2130" } }
//   return M
//
// relative file names are taken from the data directory
package configuration
