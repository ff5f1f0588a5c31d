/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

// Package lsa wraps the LSA policy surface of advapi32: opening a policy
// handle and managing per-account logon rights. NTSTATUS results are
// translated through LsaNtStatusToWinError so callers see ordinary
// Windows error codes.
package lsa

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"golang.zx2c4.com/winsec/sid"
)

//sys	lsaOpenPolicy(systemName *lsaUnicodeString, objectAttributes *lsaObjectAttributes, access PolicyAccess, policy *windows.Handle) (status uint32) = advapi32.LsaOpenPolicy
//sys	lsaClose(policy windows.Handle) (status uint32) = advapi32.LsaClose
//sys	lsaAddAccountRights(policy windows.Handle, sid *windows.SID, rights *lsaUnicodeString, count uint32) (status uint32) = advapi32.LsaAddAccountRights
//sys	lsaRemoveAccountRights(policy windows.Handle, sid *windows.SID, allRights bool, rights *lsaUnicodeString, count uint32) (status uint32) = advapi32.LsaRemoveAccountRights
//sys	lsaEnumerateAccountRights(policy windows.Handle, sid *windows.SID, rights **lsaUnicodeString, count *uint32) (status uint32) = advapi32.LsaEnumerateAccountRights
//sys	lsaFreeMemory(buffer uintptr) (status uint32) = advapi32.LsaFreeMemory
//sys	lsaNtStatusToWinError(status uint32) (ret uint32) = advapi32.LsaNtStatusToWinError

func ntStatusErr(status uint32) error {
	if status == 0 {
		return nil
	}
	return syscall.Errno(lsaNtStatusToWinError(status))
}

func toUnicodeString(s string) (lsaUnicodeString, error) {
	if s == "" {
		return lsaUnicodeString{}, nil
	}
	buf, err := syscall.UTF16FromString(s)
	if err != nil {
		return lsaUnicodeString{}, err
	}
	n := uint16(2 * (len(buf) - 1))
	return lsaUnicodeString{
		Length:        n,
		MaximumLength: n + 2,
		Buffer:        &buf[0],
	}, nil
}

func (u *lsaUnicodeString) String() string {
	if u.Buffer == nil || u.Length == 0 {
		return ""
	}
	return windows.UTF16ToString(unsafe.Slice(u.Buffer, u.Length/2))
}

// Policy owns one LSA policy handle, closed exactly once.
type Policy struct {
	h windows.Handle
}

// OpenPolicy opens the policy object of the named system, or the local
// system when the name is empty.
func OpenPolicy(systemName string, access PolicyAccess) (*Policy, error) {
	var name *lsaUnicodeString
	if systemName != "" {
		u, err := toUnicodeString(systemName)
		if err != nil {
			return nil, err
		}
		name = &u
	}
	// The object attributes of LsaOpenPolicy are reserved and must be
	// zeroed apart from the length.
	attrs := lsaObjectAttributes{}
	attrs.Length = uint32(unsafe.Sizeof(attrs))
	var h windows.Handle
	err := ntStatusErr(lsaOpenPolicy(name, &attrs, access, &h))
	if err != nil {
		return nil, err
	}
	return &Policy{h: h}, nil
}

// AddAccountRights grants the named rights to an account.
func (p *Policy) AddAccountRights(account *sid.SID, rights []string) error {
	if p == nil || p.h == 0 {
		return windows.ERROR_INVALID_HANDLE
	}
	if account == nil || !account.IsValid() || len(rights) == 0 {
		return windows.ERROR_INVALID_PARAMETER
	}
	native, err := rightsList(rights)
	if err != nil {
		return err
	}
	return ntStatusErr(lsaAddAccountRights(p.h, account.Raw(), &native[0], uint32(len(native))))
}

// RemoveAccountRights revokes the named rights from an account, or every
// right when all is set.
func (p *Policy) RemoveAccountRights(account *sid.SID, all bool, rights []string) error {
	if p == nil || p.h == 0 {
		return windows.ERROR_INVALID_HANDLE
	}
	if account == nil || !account.IsValid() || (!all && len(rights) == 0) {
		return windows.ERROR_INVALID_PARAMETER
	}
	var first *lsaUnicodeString
	var count uint32
	if !all {
		native, err := rightsList(rights)
		if err != nil {
			return err
		}
		first = &native[0]
		count = uint32(len(native))
	}
	return ntStatusErr(lsaRemoveAccountRights(p.h, account.Raw(), all, first, count))
}

// EnumerateAccountRights lists the rights held by an account. An account
// with no assigned rights reports ERROR_FILE_NOT_FOUND.
func (p *Policy) EnumerateAccountRights(account *sid.SID) ([]string, error) {
	if p == nil || p.h == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	if account == nil || !account.IsValid() {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	var rights *lsaUnicodeString
	var count uint32
	err := ntStatusErr(lsaEnumerateAccountRights(p.h, account.Raw(), &rights, &count))
	if err != nil {
		return nil, err
	}
	defer lsaFreeMemory(uintptr(unsafe.Pointer(rights)))
	raw := unsafe.Slice(rights, count)
	out := make([]string, count)
	for i := range raw {
		out[i] = raw[i].String()
	}
	return out, nil
}

func rightsList(rights []string) ([]lsaUnicodeString, error) {
	native := make([]lsaUnicodeString, len(rights))
	for i, r := range rights {
		u, err := toUnicodeString(r)
		if err != nil {
			return nil, err
		}
		if u.Buffer == nil {
			return nil, windows.ERROR_INVALID_PARAMETER
		}
		native[i] = u
	}
	return native, nil
}

// Raw borrows the policy handle for interop call sites.
func (p *Policy) Raw() windows.Handle {
	if p == nil {
		return 0
	}
	return p.h
}

// Close releases the policy handle. It is idempotent.
func (p *Policy) Close() error {
	if p == nil || p.h == 0 {
		return nil
	}
	err := ntStatusErr(lsaClose(p.h))
	p.h = 0
	return err
}
