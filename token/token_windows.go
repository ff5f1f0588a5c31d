/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

// Package token wraps Windows access tokens in an owning handle with
// SID-typed queries and privilege adjustment.
package token

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"golang.zx2c4.com/winsec/sid"
)

//sys	impersonateLoggedOnUser(token windows.Token) (err error) = advapi32.ImpersonateLoggedOnUser
//sys	lookupPrivilegeName(systemName *uint16, luid *windows.LUID, buffer *uint16, size *uint32) (err error) = advapi32.LookupPrivilegeNameW

// Token owns one access token handle, closed exactly once.
type Token struct {
	t windows.Token
}

// Current opens the current process token with the given access.
func Current(access uint32) (*Token, error) {
	var t windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), access, &t)
	if err != nil {
		return nil, err
	}
	return &Token{t: t}, nil
}

// ForProcessID opens the token of another process.
func ForProcessID(pid uint32, access uint32) (*Token, error) {
	process, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION, false, pid)
	if err != nil {
		return nil, err
	}
	defer windows.CloseHandle(process)
	var t windows.Token
	err = windows.OpenProcessToken(process, access, &t)
	if err != nil {
		return nil, err
	}
	return &Token{t: t}, nil
}

// CurrentThread opens the current thread's impersonation token, if any.
func CurrentThread(access uint32, openAsSelf bool) (*Token, error) {
	var t windows.Token
	err := windows.OpenThreadToken(windows.CurrentThread(), access, openAsSelf, &t)
	if err != nil {
		return nil, err
	}
	return &Token{t: t}, nil
}

// Raw borrows the underlying token handle for interop call sites.
func (tok *Token) Raw() windows.Token {
	if tok == nil {
		return 0
	}
	return tok.t
}

// getInfo queries variable-size token information, growing the buffer on
// ERROR_INSUFFICIENT_BUFFER.
func (tok *Token) getInfo(infoClass uint32) ([]byte, error) {
	if tok == nil || tok.t == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	n := uint32(64)
	for {
		buf := make([]byte, n)
		err := windows.GetTokenInformation(tok.t, infoClass, &buf[0], n, &n)
		if err == nil {
			return buf[:n], nil
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			return nil, err
		}
	}
}

// User returns an owned duplicate of the token's user SID.
func (tok *Token) User() (*sid.SID, error) {
	buf, err := tok.getInfo(windows.TokenUser)
	if err != nil {
		return nil, err
	}
	user := (*windows.Tokenuser)(unsafe.Pointer(&buf[0]))
	return sid.Dup(user.User.Sid)
}

// PrimaryGroup returns an owned duplicate of the token's primary group
// SID.
func (tok *Token) PrimaryGroup() (*sid.SID, error) {
	buf, err := tok.getInfo(windows.TokenPrimaryGroup)
	if err != nil {
		return nil, err
	}
	group := (*windows.Tokenprimarygroup)(unsafe.Pointer(&buf[0]))
	return sid.Dup(group.PrimaryGroup)
}

// Groups returns owned duplicates of the token's group SIDs with their
// attribute flags. The caller closes each entry.
func (tok *Token) Groups() ([]GroupEntry, error) {
	buf, err := tok.getInfo(windows.TokenGroups)
	if err != nil {
		return nil, err
	}
	groups := (*windows.Tokengroups)(unsafe.Pointer(&buf[0]))
	raw := unsafe.Slice(&groups.Groups[0], groups.GroupCount)
	entries := make([]GroupEntry, 0, len(raw))
	for _, g := range raw {
		s, err := sid.Dup(g.Sid)
		if err != nil {
			for _, e := range entries {
				e.SID.Close()
			}
			return nil, err
		}
		entries = append(entries, GroupEntry{SID: s, Attributes: g.Attributes})
	}
	return entries, nil
}

// SessionID returns the terminal services session the token belongs to.
func (tok *Token) SessionID() (uint32, error) {
	buf, err := tok.getInfo(windows.TokenSessionId)
	if err != nil {
		return 0, err
	}
	return *(*uint32)(unsafe.Pointer(&buf[0])), nil
}

// IsElevated reports whether the token is a member of an elevated
// administrator session.
func (tok *Token) IsElevated() bool {
	if tok == nil || tok.t == 0 {
		return false
	}
	return tok.t.IsElevated()
}

// Privileges lists the token's privileges by name with their enabled
// state.
func (tok *Token) Privileges() ([]Privilege, error) {
	buf, err := tok.getInfo(windows.TokenPrivileges)
	if err != nil {
		return nil, err
	}
	privs := (*windows.Tokenprivileges)(unsafe.Pointer(&buf[0]))
	raw := unsafe.Slice(&privs.Privileges[0], privs.PrivilegeCount)
	out := make([]Privilege, 0, len(raw))
	for i := range raw {
		name, err := privilegeName(&raw[i].Luid)
		if err != nil {
			return nil, err
		}
		out = append(out, Privilege{
			Name:    name,
			Enabled: raw[i].Attributes&windows.SE_PRIVILEGE_ENABLED != 0,
		})
	}
	return out, nil
}

func privilegeName(luid *windows.LUID) (string, error) {
	n := uint32(64)
	for {
		buf := make([]uint16, n)
		err := lookupPrivilegeName(nil, luid, &buf[0], &n)
		if err == nil {
			return windows.UTF16ToString(buf[:n]), nil
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			return "", err
		}
		n++
	}
}

// HasPrivilege reports whether the named privilege is present and
// enabled.
func (tok *Token) HasPrivilege(name string) (bool, error) {
	luid, err := privilegeValue(name)
	if err != nil {
		return false, err
	}
	buf, err := tok.getInfo(windows.TokenPrivileges)
	if err != nil {
		return false, err
	}
	privs := (*windows.Tokenprivileges)(unsafe.Pointer(&buf[0]))
	raw := unsafe.Slice(&privs.Privileges[0], privs.PrivilegeCount)
	for i := range raw {
		if raw[i].Luid == luid {
			return raw[i].Attributes&windows.SE_PRIVILEGE_ENABLED != 0, nil
		}
	}
	return false, nil
}

func privilegeValue(name string) (windows.LUID, error) {
	var luid windows.LUID
	name16, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return luid, err
	}
	err = windows.LookupPrivilegeValue(nil, name16, &luid)
	return luid, err
}

func (tok *Token) adjustPrivilege(name string, attributes uint32) error {
	if tok == nil || tok.t == 0 {
		return windows.ERROR_INVALID_HANDLE
	}
	luid, err := privilegeValue(name)
	if err != nil {
		return err
	}
	state := windows.Tokenprivileges{
		PrivilegeCount: 1,
		Privileges: [1]windows.LUIDAndAttributes{{
			Luid:       luid,
			Attributes: attributes,
		}},
	}
	return windows.AdjustTokenPrivileges(tok.t, false, &state, 0, nil, nil)
}

// EnablePrivilege enables the named privilege. Adjusting succeeds even
// when the token does not hold the privilege at all, so the result is
// re-checked and ERROR_NOT_ALL_ASSIGNED returned for an unheld one.
func (tok *Token) EnablePrivilege(name string) error {
	err := tok.adjustPrivilege(name, windows.SE_PRIVILEGE_ENABLED)
	if err != nil {
		return err
	}
	enabled, err := tok.HasPrivilege(name)
	if err != nil {
		return err
	}
	if !enabled {
		return windows.ERROR_NOT_ALL_ASSIGNED
	}
	return nil
}

// DisablePrivilege disables the named privilege.
func (tok *Token) DisablePrivilege(name string) error {
	return tok.adjustPrivilege(name, 0)
}

// Duplicate returns a new impersonation or primary token copied from this
// one.
func (tok *Token) Duplicate(access uint32, impersonationLevel uint32, tokenType uint32) (*Token, error) {
	if tok == nil || tok.t == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	var dup windows.Token
	err := windows.DuplicateTokenEx(tok.t, access, nil, impersonationLevel, tokenType, &dup)
	if err != nil {
		return nil, err
	}
	return &Token{t: dup}, nil
}

// Impersonate makes the calling thread run as the token's user until
// Revert.
func (tok *Token) Impersonate() error {
	if tok == nil || tok.t == 0 {
		return windows.ERROR_INVALID_HANDLE
	}
	return impersonateLoggedOnUser(tok.t)
}

// Revert ends thread impersonation.
func Revert() error {
	return windows.RevertToSelf()
}

// Close releases the token handle. It is idempotent.
func (tok *Token) Close() error {
	if tok == nil || tok.t == 0 {
		return nil
	}
	err := tok.t.Close()
	tok.t = 0
	return err
}
