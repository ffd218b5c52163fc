// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/rpc/listeners"
)

// serve the metrics of the registry on a plain HTTP listener
func startMetrics(log *logger.L, listen string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		log.Infof("metrics listener on: %s", listen)
		err := http.ListenAndServe(listen, mux)
		fatal(log, "metrics error: %s", err)
	}()
}

// the listener takes PEM text rather than file names
func withPEM(configuration listeners.RPCConfiguration) (listeners.RPCConfiguration, error) {
	certificate, err := ioutil.ReadFile(configuration.Certificate)
	if nil != err {
		return configuration, err
	}
	privateKey, err := ioutil.ReadFile(configuration.PrivateKey)
	if nil != err {
		return configuration, err
	}
	configuration.Certificate = string(certificate)
	configuration.PrivateKey = string(privateKey)
	return configuration, nil
}
