// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poe

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/event"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/weights"
)

// DefaultMaxClaimLength - used when the configuration leaves it unset
const DefaultMaxClaimLength = 128

// BlockSource - current block number of the executing call
type BlockSource interface {
	BlockNumber() uint64
}

// Configuration - registry parameters
type Configuration struct {
	MaxClaimLength uint32 `gluamapper:"max_claim_length" json:"max_claim_length"`
	BlockInterval  int    `gluamapper:"block_interval" json:"block_interval"`
}

// Dependencies - host services the registry runs against
//
// Metrics and Log are optional
type Dependencies struct {
	Blocks  BlockSource
	Proofs  ownership.Proofs
	Events  event.Sink
	Weights weights.WeightInfo
	Metrics prometheus.Registerer
	Log     *logger.L
}

// Registry - the claim registry
type Registry struct {
	log            *logger.L
	maxClaimLength uint32
	blocks         BlockSource
	proofs         ownership.Proofs
	events         event.Sink
	weights        weights.WeightInfo
	metrics        *metrics
}

// New - create a registry
func New(configuration Configuration, dependencies Dependencies) (*Registry, error) {
	if nil == dependencies.Blocks || nil == dependencies.Proofs || nil == dependencies.Events {
		return nil, fault.MissingParameters
	}

	log := dependencies.Log
	if nil == log {
		log = logger.New("registry")
	}

	w := dependencies.Weights
	if nil == w {
		w = weights.NewReference()
	}

	m, err := newMetrics(dependencies.Metrics)
	if nil != err {
		return nil, err
	}

	log.Infof("maximum claim length: %d", configuration.MaxClaimLength)

	return &Registry{
		log:            log,
		maxClaimLength: configuration.MaxClaimLength,
		blocks:         dependencies.Blocks,
		proofs:         dependencies.Proofs,
		events:         dependencies.Events,
		weights:        w,
		metrics:        m,
	}, nil
}

// MaxClaimLength - longest claim accepted
func (r *Registry) MaxClaimLength() uint32 {
	return r.maxClaimLength
}
