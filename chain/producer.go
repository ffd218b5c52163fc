// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/background"
)

// DefaultBlockInterval - seconds between blocks when not configured
const DefaultBlockInterval = 6

type producer struct {
	log      *logger.L
	interval time.Duration
}

// NewProducer - background process that creates a block every interval
func NewProducer(interval time.Duration) background.Process {
	return &producer{
		log:      logger.New("producer"),
		interval: interval,
	}
}

func (p *producer) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log

	log.Infof("starting…  interval: %s", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			height, err := NewBlock()
			if nil != err {
				log.Errorf("new block error: %s", err)
				continue loop
			}
			log.Tracef("block: %d", height)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
