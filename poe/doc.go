// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package poe - the proof of existence claim registry
//
// a claim is a short opaque byte string registered to at most one
// account at a time.  Signed accounts may:
//
//   create   - register an unowned claim to themselves
//   revoke   - remove a claim they own
//   transfer - give a claim they own to another account
//
// every call is checked in the order: origin, claim length, ownership
// table, and a successful call deposits exactly one event.  A failed
// call returns before writing anything so that the caller's storage
// transaction may simply be aborted.
package poe
