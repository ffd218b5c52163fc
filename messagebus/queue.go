// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/poed/event"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its multipart parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// QueueType - a single consumer queue
type QueueType chan Message

// BusType - all queues
type BusType struct {
	Events    QueueType
	TestQueue QueueType
}

// Bus - the queues of the process
var Bus = BusType{
	Events:    make(QueueType, queueSize),
	TestQueue: make(QueueType, queueSize),
}

// Send - queue a message, blocks while the queue is full
func (queue QueueType) Send(command string, parameters ...[]byte) {
	queue <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Deposit - queue an event as its name and packed parts
func (queue QueueType) Deposit(e event.Event) {
	queue.Send(e.Name(), e.Pack()...)
}

// Chan - channel to read from
func (queue QueueType) Chan() <-chan Message {
	return queue
}
