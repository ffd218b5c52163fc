// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/counter"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/rpc/certificate"
	"github.com/bitmark-inc/poed/rpc/listeners"
	"github.com/bitmark-inc/poed/rpc/server"
)

const (
	tlsName = "client_rpc"
)

type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener *listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

var connectionCount counter.Counter

// Initialise - start the client RPC listener
//
// registerer may be nil
func Initialise(configuration *listeners.RPCConfiguration, version string, executive server.Executive, registerer prometheus.Registerer) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	if nil != registerer {
		gauge := prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "poe",
				Name:      "rpc_connections",
				Help:      "Open client RPC connections.",
			},
			connectionCount.Float64,
		)
		if err := registerer.Register(gauge); nil != err {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCount,
		server.Create(log, version, &connectionCount, executive),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listener = rpcListener

	globalData.initialised = true
	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()
	globalData.listener = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
