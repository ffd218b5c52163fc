// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/counter"
	"github.com/bitmark-inc/poed/rpc/claims"
	"github.com/bitmark-inc/poed/rpc/node"
)

// Executive - everything the services need from the chain
type Executive interface {
	claims.Executive
	node.Chain
}

// Create - an RPC server with the Claims and Node services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, executive Executive) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(claims.New(log, executive))
	_ = server.Register(node.New(log, start, version, rpcCount, executive))

	return server
}
