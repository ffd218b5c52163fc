// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/poed/account"
	"github.com/bitmark-inc/poed/command/poe-cli/rpccalls"
)

type generateReply struct {
	Account    account.AccountId `json:"account"`
	PrivateKey string            `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, privateKey, err := account.Generate(rand.Reader)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account:    id,
		PrivateKey: hex.EncodeToString(privateKey),
	})
}

func runCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, claim, err := senderAndClaim(c)
	if nil != err {
		return err
	}

	return withClient(m, func(client *rpccalls.Client) (interface{}, error) {
		return client.Create(sender, claim)
	})
}

func runRevoke(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, claim, err := senderAndClaim(c)
	if nil != err {
		return err
	}

	return withClient(m, func(client *rpccalls.Client) (interface{}, error) {
		return client.Revoke(sender, claim)
	})
}

func runTransfer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, claim, err := senderAndClaim(c)
	if nil != err {
		return err
	}

	receiver, err := checkAccount("receiver", c.String("receiver"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	return withClient(m, func(client *rpccalls.Client) (interface{}, error) {
		return client.Transfer(sender, claim, receiver)
	})
}

func runGet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	claim, err := checkClaim(c.String("claim"), c.String("file"))
	if nil != err {
		return err
	}

	return withClient(m, func(client *rpccalls.Client) (interface{}, error) {
		return client.Get(claim)
	})
}

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	return withClient(m, func(client *rpccalls.Client) (interface{}, error) {
		return client.Info()
	})
}

// connect, run one call and print its reply
func withClient(m *metadata, call func(*rpccalls.Client) (interface{}, error)) error {
	client, err := rpccalls.NewClient(m.connect, m.insecure, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := call(client)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func senderAndClaim(c *cli.Context) (account.AccountId, string, error) {
	sender, err := checkAccount("identity", c.GlobalString("identity"))
	if nil != err {
		return "", "", err
	}

	claim, err := checkClaim(c.String("claim"), c.String("file"))
	if nil != err {
		return "", "", err
	}

	m := c.App.Metadata["config"].(*metadata)
	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "claim: %s\n", claim)
	}
	return sender, claim, nil
}

func checkAccount(name string, text string) (account.AccountId, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		return "", fmt.Errorf("%s is required", name)
	}
	id, err := account.FromBase58(text)
	if nil != err {
		return "", fmt.Errorf("%s: %q error: %s", name, text, err)
	}
	return id, nil
}

// exactly one of a hex claim or a file to digest
func checkClaim(claim string, fileName string) (string, error) {
	claim = strings.TrimSpace(claim)
	if "" != claim && "" != fileName {
		return "", fmt.Errorf("only one of claim and file may be given")
	}

	if "" != fileName {
		data, err := ioutil.ReadFile(fileName)
		if nil != err {
			return "", err
		}
		digest := sha3.Sum256(data)
		return hex.EncodeToString(digest[:]), nil
	}

	if "" == claim {
		return "", fmt.Errorf("claim is required")
	}
	if _, err := hex.DecodeString(claim); nil != err {
		return "", fmt.Errorf("claim: %q is not hex: %s", claim, err)
	}
	return strings.ToLower(claim), nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
