// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/rpc/claims"
	"github.com/bitmark-inc/poed/rpc/node"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a poed
//
// insecure skips verification of the self signed node certificate
func NewClient(connect string, insecure bool, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: insecure,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the poed connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// Create - register a hex encoded claim for the sender
func (c *Client) Create(sender account.AccountId, claim string) (*claims.ReceiptReply, error) {
	arguments := &claims.ClaimArguments{
		Sender: sender,
		Claim:  claim,
	}
	return c.call("Claims.Create", arguments)
}

// Revoke - remove a claim owned by the sender
func (c *Client) Revoke(sender account.AccountId, claim string) (*claims.ReceiptReply, error) {
	arguments := &claims.ClaimArguments{
		Sender: sender,
		Claim:  claim,
	}
	return c.call("Claims.Revoke", arguments)
}

// Transfer - give a claim owned by the sender to another account
func (c *Client) Transfer(sender account.AccountId, claim string, destination account.AccountId) (*claims.ReceiptReply, error) {
	arguments := &claims.TransferArguments{
		Sender:      sender,
		Claim:       claim,
		Destination: destination,
	}
	return c.call("Claims.Transfer", arguments)
}

// Get - fetch the owner of a claim
func (c *Client) Get(claim string) (*claims.GetReply, error) {
	arguments := &claims.GetArguments{
		Claim: claim,
	}
	c.printArguments("Claims.Get", arguments)

	var reply claims.GetReply
	if err := c.client.Call("Claims.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - node status
func (c *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.client.Call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) call(method string, arguments interface{}) (*claims.ReceiptReply, error) {
	c.printArguments(method, arguments)

	var reply claims.ReceiptReply
	if err := c.client.Call(method, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) printArguments(method string, arguments interface{}) {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s: %+v\n", method, arguments)
	}
}
