// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS for registry clients
//
// services:
//
//   Claims.Create    {sender, claim}              → {block, weight, events}
//   Claims.Revoke    {sender, claim}              → {block, weight, events}
//   Claims.Transfer  {sender, claim, destination} → {block, weight, events}
//   Claims.Get       {claim}                      → {found, owner, createdAt}
//   Node.Info        {}                           → {version, chain, height, ...}
//
// accounts are base58 and claims are hex.  The sender is taken as the
// authenticated principal, so the listener must only be reachable by
// trusted clients.
package rpc
