// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/chain"
	"github.com/bitmark-inc/poed/counter"
	"github.com/bitmark-inc/poed/fixtures"
	"github.com/bitmark-inc/poed/rpc/mocks"
	"github.com/bitmark-inc/poed/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockExecutive(ctl)
	c.EXPECT().Name().Return(chain.Testing).Times(1)
	c.EXPECT().Height().Return(uint64(12)).Times(1)
	c.EXPECT().MaxClaimLength().Return(uint32(128)).Times(1)

	var count counter.Counter
	count.Acquire(10)

	n := node.New(logger.New(fixtures.LogCategory), time.Now().Add(-time.Minute), "1.0", &count, c)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, uint64(12), reply.Height, "wrong height")
	assert.Equal(t, uint32(128), reply.MaxClaimLength, "wrong maximum")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong rpc count")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}
