// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=proofs.go -package=mocks github.com/bitmark-inc/poed/ownership Proofs
//go:generate mockgen -destination=blocksource.go -package=mocks github.com/bitmark-inc/poed/poe BlockSource
//go:generate mockgen -destination=sink.go -package=mocks github.com/bitmark-inc/poed/event Sink

package mocks
