// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/chain"
	"github.com/bitmark-inc/poed/claim"
	"github.com/bitmark-inc/poed/configuration"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/ownership"
	"github.com/bitmark-inc/poed/rpc/certificate"
	"github.com/bitmark-inc/poed/storage"
	"github.com/bitmark-inc/poed/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	// pool prefix of storage.Pool.Proofs
	proofsPrefix = 'P'
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-identity", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "height", "get", "g", "key", "k":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                         (h)       - display this message\n\n")
		fmt.Printf("  version                      (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]  (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                           and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-identity [DIR]   (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                           and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                        (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                           for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                  (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  height                                 - display the stored block number\n")
		fmt.Printf("\n")

		fmt.Printf("  get HEX                      (g)       - display the owner of a hex encoded claim\n")
		fmt.Printf("\n")

		fmt.Printf("  key HEX                      (k)       - decode a hex proofs database key\n")
		fmt.Printf("                                           and display its claim and owner\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
//
// the database is opened read only so these commands can run
// alongside a live node
func processDataCommand(log *logger.L, arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "height":
		openReadOnly(log, options)
		defer storage.Finalise()

		fmt.Printf("%d\n", chain.StoredHeight())

	case "get", "g":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing claim argument")
		}
		raw, err := hex.DecodeString(arguments[0])
		if nil != err {
			exitwithstatus.Message("error: claim: %q  error: %s", arguments[0], fault.InvalidClaim)
		}
		bounded, err := claim.Bound(raw, options.Registry.MaxClaimLength)
		if nil != err {
			exitwithstatus.Message("error: claim: %q  error: %s", arguments[0], err)
		}

		openReadOnly(log, options)
		defer storage.Finalise()

		record, err := ownership.Get(storage.Pool.Proofs, bounded)
		if nil != err {
			exitwithstatus.Message("error: claim: %q  error: %s", arguments[0], err)
		}
		if nil == record {
			exitwithstatus.Message("error: claim: %q  error: %s", arguments[0], fault.ClaimNotExist)
		}
		printJSON(record)

	case "key", "k":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing key argument")
		}
		bounded, err := decodeStorageKey(arguments[0], options.Registry.MaxClaimLength)
		if nil != err {
			exitwithstatus.Message("error: key: %q  error: %s", arguments[0], err)
		}

		openReadOnly(log, options)
		defer storage.Finalise()

		record, err := ownership.Get(storage.Pool.Proofs, bounded)
		if nil != err {
			exitwithstatus.Message("error: key: %q  error: %s", arguments[0], err)
		}
		printJSON(keyReply{
			Claim:  bounded.String(),
			Record: record,
		})

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

type keyReply struct {
	Claim  string            `json:"claim"`
	Record *ownership.Record `json:"record"`
}

// a key as listed from the database, with or without the pool prefix
func decodeStorageKey(text string, maximum uint32) (claim.Bounded, error) {
	key, err := hex.DecodeString(text)
	if nil != err {
		return claim.Bounded{}, fault.InvalidStorageKey
	}

	bounded, err := claim.FromStorageKey(key, maximum)
	if fault.InvalidStorageKey == err && len(key) > 0 && proofsPrefix == key[0] {
		return claim.FromStorageKey(key[1:], maximum)
	}
	return bounded, err
}

func openReadOnly(log *logger.L, options *configuration.Configuration) {
	log.Infof("open database: %q", options.Database.Name)
	if err := storage.Initialise(options.Database.Name, storage.ReadOnly); nil != err {
		exitwithstatus.Message("storage initialise error: %s", err)
	}
}

func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
