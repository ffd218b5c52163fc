// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/poe"
	"github.com/bitmark-inc/poed/storage"
	"github.com/bitmark-inc/poed/weights"
)

var heightKey = []byte("height")

type chainData struct {
	sync.RWMutex

	// serialises calls and block production
	apply sync.Mutex

	log *logger.L

	name           string
	height         uint64
	maxClaimLength uint32

	trx      storage.Transaction
	journal  *event.Journal
	sink     event.Sink
	registry *poe.Registry
	weights  weights.WeightInfo

	heightGauge prometheus.Gauge

	// set once during initialise
	initialised bool
}

// global data
var globalData chainData

// Initialise - restore the block height and create the registry
//
// sink receives the events of each committed call; registerer may be nil
func Initialise(name string, configuration poe.Configuration, sink event.Sink, registerer prometheus.Registerer) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if !Valid(name) {
		return fault.InvalidChain
	}
	if nil == sink {
		return fault.MissingParameters
	}

	globalData.log = logger.New("chain")
	globalData.log.Info("starting…")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Abort()

	height := StoredHeight()

	gauge, err := newHeightGauge(registerer)
	if nil != err {
		return err
	}

	globalData.name = name
	globalData.height = height
	globalData.maxClaimLength = configuration.MaxClaimLength
	globalData.trx = trx
	globalData.journal = event.NewJournal()
	globalData.sink = sink
	globalData.weights = weights.NewReference()
	globalData.heightGauge = gauge

	registry, err := poe.New(configuration, poe.Dependencies{
		Blocks:  blockSource{},
		Proofs:  ownership.NewTable(trx, storage.Pool.Proofs),
		Events:  globalData.journal,
		Weights: globalData.weights,
		Metrics: registerer,
		Log:     logger.New("registry"),
	})
	if nil != err {
		return err
	}
	globalData.registry = registry

	globalData.setGauge()

	globalData.log.Infof("chain: %s  height: %d", name, height)

	globalData.initialised = true
	return nil
}

// Finalise - stop accepting calls
func Finalise() error {
	globalData.apply.Lock()
	defer globalData.apply.Unlock()

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	globalData.registry = nil
	globalData.trx = nil

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

func newHeightGauge(registerer prometheus.Registerer) (prometheus.Gauge, error) {
	if nil == registerer {
		return nil, nil
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "poe",
		Name:      "block_height",
		Help:      "Current block number of the executive.",
	})

	err := registerer.Register(gauge)
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector.(prometheus.Gauge), nil
	}
	if nil != err {
		return nil, err
	}
	return gauge, nil
}

// must hold lock
func (c *chainData) setGauge() {
	if nil != c.heightGauge {
		c.heightGauge.Set(float64(c.height))
	}
}
