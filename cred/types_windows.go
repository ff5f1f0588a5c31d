/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package cred

import (
	"golang.org/x/sys/windows"
)

// Type is the CRED_TYPE of a credential.
type Type uint32

const (
	CRED_TYPE_GENERIC                 Type = 1
	CRED_TYPE_DOMAIN_PASSWORD         Type = 2
	CRED_TYPE_DOMAIN_CERTIFICATE      Type = 3
	CRED_TYPE_DOMAIN_VISIBLE_PASSWORD Type = 4
	CRED_TYPE_GENERIC_CERTIFICATE     Type = 5
	CRED_TYPE_DOMAIN_EXTENDED         Type = 6
)

// Persist is the CRED_PERSIST scope of a credential.
type Persist uint32

const (
	CRED_PERSIST_SESSION       Persist = 1
	CRED_PERSIST_LOCAL_MACHINE Persist = 2
	CRED_PERSIST_ENTERPRISE    Persist = 3
)

const (
	CRED_MAX_CREDENTIAL_BLOB_SIZE = 5 * 512
	CRED_MAX_STRING_LENGTH        = 256
)

// nativeCredential mirrors CREDENTIALW from wincred.h.
type nativeCredential struct {
	Flags              uint32
	Type               Type
	TargetName         *uint16
	Comment            *uint16
	LastWritten        windows.Filetime
	CredentialBlobSize uint32
	CredentialBlob     *byte
	Persist            Persist
	AttributeCount     uint32
	Attributes         *nativeCredentialAttribute
	TargetAlias        *uint16
	UserName           *uint16
}

// nativeCredentialAttribute mirrors CREDENTIAL_ATTRIBUTEW from wincred.h.
type nativeCredentialAttribute struct {
	Keyword   *uint16
	Flags     uint32
	ValueSize uint32
	Value     *byte
}
