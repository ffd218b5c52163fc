// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fixtures"
	"github.com/bitmark-inc/poed/messagebus"
)

func TestQueue(t *testing.T) {
	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: nil,
		},
		{
			Command:    "c2",
			Parameters: [][]byte{{1}},
		},
		{
			Command:    "c3",
			Parameters: [][]byte{{1}, {2, 3}},
		},
	}

	for _, item := range items {
		messagebus.Bus.TestQueue.Send(item.Command, item.Parameters...)
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item.Command, received.Command, "wrong command")
		assert.Equal(t, item.Parameters, received.Parameters, "wrong parameters")
	}
}

func TestDeposit(t *testing.T) {
	var sink event.Sink = messagebus.Bus.TestQueue

	sink.Deposit(event.NewClaimRevoked(fixtures.Bob, fixtures.Claim()))

	received := <-messagebus.Bus.TestQueue.Chan()
	assert.Equal(t, event.ClaimRevokedName, received.Command, "wrong command")
	assert.Equal(t, [][]byte{fixtures.Bob.Bytes(), fixtures.Claim()}, received.Parameters, "wrong parameters")
}
