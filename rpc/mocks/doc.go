// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=executive.go -package=mocks github.com/bitmark-inc/poed/rpc/server Executive

package mocks
