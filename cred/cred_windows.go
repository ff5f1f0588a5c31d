/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

// Package cred wraps the Windows credential manager. Credentials the
// platform hands out are copied into Go memory and CredFree'd before any
// result is returned, so no platform allocation outlives a call.
package cred

import (
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

//sys	credRead(target *uint16, credType Type, flags uint32, credential **nativeCredential) (err error) = advapi32.CredReadW
//sys	credWrite(credential *nativeCredential, flags uint32) (err error) = advapi32.CredWriteW
//sys	credDelete(target *uint16, credType Type, flags uint32) (err error) = advapi32.CredDeleteW
//sys	credEnumerate(filter *uint16, flags uint32, count *uint32, credentials ***nativeCredential) (err error) = advapi32.CredEnumerateW
//sys	credFree(buffer unsafe.Pointer) = advapi32.CredFree

// Credential is one credential manager entry.
type Credential struct {
	TargetName  string
	TargetAlias string
	UserName    string
	Comment     string
	Type        Type
	Persist     Persist
	Flags       uint32
	LastWritten time.Time
	Secret      []byte
	Attributes  []Attribute
}

// Attribute is one application-defined key/value pair on a credential.
type Attribute struct {
	Keyword string
	Flags   uint32
	Value   []byte
}

func fromNative(n *nativeCredential) *Credential {
	c := &Credential{
		TargetName:  windows.UTF16PtrToString(n.TargetName),
		TargetAlias: windows.UTF16PtrToString(n.TargetAlias),
		UserName:    windows.UTF16PtrToString(n.UserName),
		Comment:     windows.UTF16PtrToString(n.Comment),
		Type:        n.Type,
		Persist:     n.Persist,
		Flags:       n.Flags,
		LastWritten: time.Unix(0, n.LastWritten.Nanoseconds()),
	}
	if n.CredentialBlobSize > 0 {
		c.Secret = make([]byte, n.CredentialBlobSize)
		copy(c.Secret, unsafe.Slice(n.CredentialBlob, n.CredentialBlobSize))
	}
	if n.AttributeCount > 0 {
		raw := unsafe.Slice(n.Attributes, n.AttributeCount)
		c.Attributes = make([]Attribute, len(raw))
		for i, a := range raw {
			c.Attributes[i] = Attribute{
				Keyword: windows.UTF16PtrToString(a.Keyword),
				Flags:   a.Flags,
			}
			if a.ValueSize > 0 {
				c.Attributes[i].Value = make([]byte, a.ValueSize)
				copy(c.Attributes[i].Value, unsafe.Slice(a.Value, a.ValueSize))
			}
		}
	}
	return c
}

func (c *Credential) toNative() (*nativeCredential, error) {
	if c.TargetName == "" {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	if len(c.Secret) > CRED_MAX_CREDENTIAL_BLOB_SIZE {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	target16, err := syscall.UTF16PtrFromString(c.TargetName)
	if err != nil {
		return nil, err
	}
	n := &nativeCredential{
		Flags:      c.Flags,
		Type:       c.Type,
		TargetName: target16,
		Persist:    c.Persist,
	}
	if c.TargetAlias != "" {
		if n.TargetAlias, err = syscall.UTF16PtrFromString(c.TargetAlias); err != nil {
			return nil, err
		}
	}
	if c.UserName != "" {
		if n.UserName, err = syscall.UTF16PtrFromString(c.UserName); err != nil {
			return nil, err
		}
	}
	if c.Comment != "" {
		if n.Comment, err = syscall.UTF16PtrFromString(c.Comment); err != nil {
			return nil, err
		}
	}
	if len(c.Secret) > 0 {
		n.CredentialBlobSize = uint32(len(c.Secret))
		n.CredentialBlob = &c.Secret[0]
	}
	if len(c.Attributes) > 0 {
		attrs := make([]nativeCredentialAttribute, len(c.Attributes))
		for i, a := range c.Attributes {
			if attrs[i].Keyword, err = syscall.UTF16PtrFromString(a.Keyword); err != nil {
				return nil, err
			}
			attrs[i].Flags = a.Flags
			if len(a.Value) > 0 {
				attrs[i].ValueSize = uint32(len(a.Value))
				attrs[i].Value = &a.Value[0]
			}
		}
		n.AttributeCount = uint32(len(attrs))
		n.Attributes = &attrs[0]
	}
	return n, nil
}

// Read retrieves one credential by target name and type.
func Read(target string, credType Type) (*Credential, error) {
	if target == "" {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	target16, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return nil, err
	}
	var native *nativeCredential
	err = credRead(target16, credType, 0, &native)
	if err != nil {
		return nil, err
	}
	defer credFree(unsafe.Pointer(native))
	return fromNative(native), nil
}

// Write stores a credential, replacing any existing entry with the same
// target name and type.
func Write(c *Credential) error {
	native, err := c.toNative()
	if err != nil {
		return err
	}
	return credWrite(native, 0)
}

// Delete removes one credential by target name and type.
func Delete(target string, credType Type) error {
	if target == "" {
		return windows.ERROR_INVALID_PARAMETER
	}
	target16, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	return credDelete(target16, credType, 0)
}

// List enumerates the caller's credentials, optionally filtered by a
// target name prefix of the form "prefix*". An empty filter lists all.
func List(filter string) ([]*Credential, error) {
	var filter16 *uint16
	if filter != "" {
		var err error
		filter16, err = syscall.UTF16PtrFromString(filter)
		if err != nil {
			return nil, err
		}
	}
	var count uint32
	var natives **nativeCredential
	err := credEnumerate(filter16, 0, &count, &natives)
	if err != nil {
		return nil, err
	}
	defer credFree(unsafe.Pointer(natives))
	raw := unsafe.Slice(natives, count)
	out := make([]*Credential, count)
	for i, n := range raw {
		out[i] = fromNative(n)
	}
	return out, nil
}
