// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/counter"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - the client_rpc block of the configuration file
//
// Certificate and PrivateKey hold PEM text
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Listener - JSON RPC over TLS on a set of addresses
type Listener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	network        []string
	address        []string
	listeners      []net.Listener
}

// NewRPC - validate the listen addresses
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (*Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	network, address, err := parseListenAddress(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", logName, err)
		return nil, err
	}

	return &Listener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		network:        network,
		address:        address,
	}, nil
}

// Serve - start accepting on every address
func (r *Listener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, address := range r.address {
		r.log.Infof("starting RPC server: %s", address)
		listen, err := tls.Listen(r.network[i], address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			r.close()
			return err
		}
		r.listeners = append(r.listeners, listen)

		go r.accept(listen)
	}
	return nil
}

// Addresses - actual bound addresses
func (r *Listener) Addresses() []string {
	r.Lock()
	defer r.Unlock()

	addresses := make([]string, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr().String()
	}
	return addresses
}

// Close - stop accepting, established connections run to completion
func (r *Listener) Close() {
	r.Lock()
	r.close()
	r.Unlock()
}

// must hold lock
func (r *Listener) close() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *Listener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}

		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit reached, rejecting: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Release()
		}()
	}
}

// "*:port" listens on all interfaces of both families
func parseListenAddress(addresses []string) ([]string, []string, error) {
	network := make([]string, len(addresses))
	parsed := make([]string, len(addresses))

	for i, listen := range addresses {
		canonical, v6, err := util.CanonicalIPandPort(listen)
		if nil != err {
			return nil, nil, err
		}

		parsed[i] = canonical
		switch {
		case strings.HasPrefix(strings.TrimSpace(listen), "*"):
			network[i] = "tcp"
		case v6:
			network[i] = "tcp6"
		default:
			network[i] = "tcp4"
		}
	}
	return network, parsed, nil
}
