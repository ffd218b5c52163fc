// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/poed/chain"
	"github.com/bitmark-inc/poed/fault"
	"github.com/bitmark-inc/poed/poe"
	"github.com/bitmark-inc/poed/publish"
	"github.com/bitmark-inc/poed/rpc/listeners"
	"github.com/bitmark-inc/poed/util"
)

// defaults, files are relative to the data directory
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "poed.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

var defaultLogLevels = map[string]string{
	logger.DefaultTag: "critical",
}

// DatabaseType - location of the LevelDB database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// MetricsType - prometheus endpoint, disabled if Listen is empty
type MetricsType struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Registry   poe.Configuration          `gluamapper:"registry" json:"registry"`
	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Metrics    MetricsType                `gluamapper:"metrics" json:"metrics"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
//
// variables are visible to the Lua file as global strings
func GetConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := defaults()
	if err := ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	configurationDirectory, _ := filepath.Split(configurationFileName)
	if err := options.resolvePaths(configurationDirectory); nil != err {
		return nil, err
	}

	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

func defaults() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Live,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},
		Registry: poe.Configuration{
			MaxClaimLength: poe.DefaultMaxClaimLength,
			BlockInterval:  chain.DefaultBlockInterval,
		},
		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},
		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// chain name and registry parameters
//
// an unset database name follows the chain
func (c *Configuration) validate() error {
	c.Chain = strings.ToLower(c.Chain)
	if !chain.Valid(c.Chain) {
		return fault.InvalidChain
	}

	if defaultLiveDatabase == c.Database.Name {
		c.Database.Name = c.Chain + ".leveldb"
	}

	if c.Registry.BlockInterval < 1 {
		return fault.InvalidBlockInterval
	}
	return nil
}

// make every file absolute, relative ones are under the data directory
//
// "." as data directory is the directory holding the configuration file
func (c *Configuration) resolvePaths(configurationDirectory string) error {
	switch c.DataDirectory {
	case "", "~":
		return fmt.Errorf("Path: %q is not a valid directory", c.DataDirectory)
	case ".":
		c.DataDirectory = configurationDirectory
	default:
		c.DataDirectory = filepath.Clean(c.DataDirectory)
	}

	info, err := os.Stat(c.DataDirectory)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", c.DataDirectory)
	}

	for _, f := range []*string{
		&c.Database.Directory,
		&c.ClientRPC.Certificate,
		&c.ClientRPC.PrivateKey,
		&c.Publishing.PublicKey,
		&c.Publishing.PrivateKey,
		&c.Logging.Directory,
	} {
		*f = util.EnsureAbsolute(c.DataDirectory, *f)
	}

	if "" != c.PidFile {
		c.PidFile = util.EnsureAbsolute(c.DataDirectory, c.PidFile)
	}

	// plain file names only
	for _, name := range []string{c.Database.Name, c.Logging.File} {
		if d := filepath.Dir(name); "." != d && "" != d {
			return fmt.Errorf("Files: %q is not plain name", name)
		}
	}
	c.Database.Name = filepath.Join(c.Database.Directory, c.Database.Name)

	return nil
}
