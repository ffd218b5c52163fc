// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the executive that embeds the claim registry
//
// calls are applied one at a time, each inside its own storage
// transaction.  A failed call aborts the transaction and drops its
// events so that nothing of it remains; a successful call commits and
// then hands its events to the configured sink.
//
// the block number advances by NewBlock, normally driven by the
// producer background process, and is persisted in the chain pool
package chain
