// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/messagebus"
	"github.com/bitmark-inc/poed/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

func newBroadcaster(privateKey []byte, publicKey []byte, broadcast []string, queue <-chan messagebus.Message) (*broadcaster, error) {
	log := logger.New("broadcaster")
	log.Info("initialising…")

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return nil, err
	}

	return &broadcaster{
		log:     log,
		queue:   queue,
		socket4: socket4,
		socket6: socket6,
	}, nil
}

// forward each queued event to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			log.Debugf("sending: %s  data: %x", item.Command, item.Parameters)
			brdc.send(brdc.socket4, &item)
			brdc.send(brdc.socket6, &item)
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}

	log.Info("stopped")
}

// a subscriber that is too slow loses messages rather than blocking
func (brdc *broadcaster) send(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.DONTWAIT
	if 0 != len(item.Parameters) {
		flags |= zmq.SNDMORE
	}
	if _, err := socket.Send(item.Command, flags); nil != err {
		brdc.log.Errorf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			brdc.log.Errorf("send: %s  part: %d  error: %s", item.Command, i, err)
			return
		}
	}
}

// empties the queue when nothing is broadcast
type drain struct {
	log   *logger.L
	queue <-chan messagebus.Message
}

func (d *drain) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-d.queue:
			d.log.Tracef("drop: %s", item.Command)
		}
	}
}
