// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed registry events over ZeroMQ
//
// each event is sent as a multipart message: the event name followed
// by its packed parts.  With no broadcast address configured the
// event queue is drained and the events dropped.
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/background"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/messagebus"
	"github.com/bitmark-inc/poed/zmqutil"
)

// Configuration - the publishing block of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

type publishData struct {
	sync.RWMutex

	log *logger.L

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcaster, or a drain if not broadcasting
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	queue := messagebus.Bus.Events.Chan()

	var process background.Process
	if nil == configuration || 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: events will be dropped")
		process = &drain{
			log:   globalData.log,
			queue: queue,
		}
	} else {
		privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		globalData.log.Tracef("public key: %x", publicKey)

		if err := zmqutil.StartAuthentication(); nil != err {
			globalData.log.Errorf("zmq authentication error: %s", err)
			return err
		}

		b, err := newBroadcaster(privateKey, publicKey, configuration.Broadcast, queue)
		if nil != err {
			return err
		}
		process = b
	}

	globalData.initialised = true

	globalData.log.Info("start background…")
	globalData.background = background.Start(background.Processes{process}, nil)

	return nil
}

// Finalise - stop the background process
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
