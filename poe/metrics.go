// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poe

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/poed/fault"
)

// values of the result label
const (
	resultOk         = "ok"
	resultExists     = "exists"
	resultLength     = "length"
	resultNotFound   = "not_found"
	resultPermission = "permission"
	resultInvalid    = "invalid"
	resultProcess    = "process"
	resultRecord     = "record"
	resultOther      = "other"
)

type metrics struct {
	calls  *prometheus.CounterVec
	length *prometheus.HistogramVec
}

// nil registerer gives nil metrics, which observe nothing
func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	if nil == registerer {
		return nil, nil
	}

	calls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poe",
			Name:      "calls_total",
			Help:      "Registry calls by function and result.",
		},
		[]string{"call", "result"},
	)
	length := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "poe",
			Name:      "claim_length_bytes",
			Help:      "Length of the claims presented to the registry.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 9),
		},
		[]string{"call"},
	)

	c, err := register(registerer, calls)
	if nil != err {
		return nil, err
	}
	l, err := register(registerer, length)
	if nil != err {
		return nil, err
	}

	return &metrics{
		calls:  c.(*prometheus.CounterVec),
		length: l.(*prometheus.HistogramVec),
	}, nil
}

// a second registry on the same registerer shares the collectors
func register(registerer prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	err := registerer.Register(c)
	if nil == err {
		return c, nil
	}
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector, nil
	}
	return nil, err
}

func (m *metrics) observe(call string, length int, err error) {
	if nil == m {
		return
	}

	m.calls.WithLabelValues(call, resultOf(err)).Inc()
	m.length.WithLabelValues(call).Observe(float64(length))
}

// fixed label set, one per error class
func resultOf(err error) string {
	switch {
	case nil == err:
		return resultOk
	case fault.IsErrExists(err):
		return resultExists
	case fault.IsErrLength(err):
		return resultLength
	case fault.IsErrNotFound(err):
		return resultNotFound
	case fault.IsErrPermission(err):
		return resultPermission
	case fault.IsErrInvalid(err):
		return resultInvalid
	case fault.IsErrProcess(err):
		return resultProcess
	case fault.IsErrRecord(err):
		return resultRecord
	default:
		return resultOther
	}
}
