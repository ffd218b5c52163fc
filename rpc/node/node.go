// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/counter"
	"github.com/bitmark-inc/poed/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Chain - state of the executive
type Chain interface {
	Name() string
	Height() uint64
	MaxClaimLength() uint32
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   Chain
	counter *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version        string `json:"version"`
	Chain          string `json:"chain"`
	Height         uint64 `json:"height"`
	MaxClaimLength uint32 `json:"maxClaimLength"`
	RPCs           uint64 `json:"rpcs"`
	Uptime         string `json:"uptime"`
}

// New - create the RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, c Chain) *Node {
	return &Node{
		Log:     log,
		Limiter: ratelimit.New(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   c,
		counter: counter,
	}
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Chain = node.Chain.Name()
	reply.Height = node.Chain.Height()
	reply.MaxClaimLength = node.Chain.MaxClaimLength()
	reply.RPCs = node.counter.Uint64()
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
