// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	insecure bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "poe-cli"
	app.Usage = "register and manage proof of existence claims"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " poed client rpc `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "insecure, k",
			Usage: " do not verify the node certificate",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " base58 sender `ACCOUNT`",
			EnvVar: "POE_IDENTITY",
		},
	}

	claimFlag := cli.StringFlag{
		Name:  "claim, x",
		Value: "",
		Usage: "*hex encoded claim `HEX`",
	}
	fileFlag := cli.StringFlag{
		Name:  "file, f",
		Value: "",
		Usage: "+claim the SHA3-256 digest of `FILE`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate-account",
			Aliases:   []string{"generate"},
			Usage:     "generate a new account and its private key",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "create",
			Usage:     "register a claim for the identity",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     []cli.Flag{claimFlag, fileFlag},
			Action:    runCreate,
		},
		{
			Name:      "revoke",
			Usage:     "revoke a claim owned by the identity",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     []cli.Flag{claimFlag, fileFlag},
			Action:    runRevoke,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a claim owned by the identity to another account",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				claimFlag,
				fileFlag,
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*base58 receiving `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "get",
			Usage:     "display the owner of a claim",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     []cli.Flag{claimFlag, fileFlag},
			Action:    runGet,
		},
		{
			Name:   "info",
			Usage:  "display poed status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display poe-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			insecure: c.GlobalBool("insecure"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
