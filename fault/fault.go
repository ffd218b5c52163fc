// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	BadOrigin                    = PermissionError("origin is not signed")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ClaimNotExist                = NotFoundError("claim does not exist")
	ClaimTooLong                 = LengthError("claim is too long")
	ConfigurationNotTable        = InvalidError("configuration did not return a table")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DatabaseVersion              = RecordError("incompatible database version")
	InvalidAccount               = InvalidError("invalid account")
	InvalidBlockInterval         = InvalidError("invalid block interval")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidClaim                 = InvalidError("invalid claim")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidStorageKey            = InvalidError("invalid storage key")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotClaimOwner                = PermissionError("not claim owner")
	NotInitialised               = ProcessError("not initialised")
	NotOwnerDataPack             = RecordError("not owner data pack")
	ProofAlreadyExist            = ExistsError("proof already exists")
	RateLimiting                 = ProcessError("rate limiting")
	TransactionInUse             = ProcessError("transaction already in use")
	TransactionNotInUse          = ProcessError("transaction not in use")
	UnknownCall                  = InvalidError("unknown call")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
