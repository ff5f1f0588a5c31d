/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

// Package sid wraps the Windows security identifier (SID) functions of
// advapi32 in an owning handle type. A SID owns exactly one LocalAlloc'd
// buffer holding the native structure and releases it exactly once; all
// content operations delegate to the platform rather than reinterpreting
// the buffer.
package sid

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

//sys	copySid(destLen uint32, dest *windows.SID, src *windows.SID) (err error) = advapi32.CopySid
//sys	getLengthSid(sid *windows.SID) (n uint32) = advapi32.GetLengthSid
//sys	isValidSid(sid *windows.SID) (valid bool) = advapi32.IsValidSid
//sys	equalSid(sid1 *windows.SID, sid2 *windows.SID) (equal bool) = advapi32.EqualSid
//sys	allocateAndInitializeSid(authority *windows.SidIdentifierAuthority, subAuthorityCount byte, subAuthority0 uint32, subAuthority1 uint32, subAuthority2 uint32, subAuthority3 uint32, subAuthority4 uint32, subAuthority5 uint32, subAuthority6 uint32, subAuthority7 uint32, sid **windows.SID) (err error) = advapi32.AllocateAndInitializeSid
//sys	freeSid(sid *windows.SID) (err error) [failretval!=0] = advapi32.FreeSid
//sys	convertStringSidToSid(stringSid *uint16, sid **windows.SID) (err error) = advapi32.ConvertStringSidToSidW
//sys	convertSidToStringSid(sid *windows.SID, stringSid **uint16) (err error) = advapi32.ConvertSidToStringSidW
//sys	getSidSubAuthorityCount(sid *windows.SID) (count *byte) = advapi32.GetSidSubAuthorityCount
//sys	getSidSubAuthority(sid *windows.SID, index uint32) (subAuthority *uint32) = advapi32.GetSidSubAuthority
//sys	getSidIdentifierAuthority(sid *windows.SID) (authority *windows.SidIdentifierAuthority) = advapi32.GetSidIdentifierAuthority

// ErrSubAuthorityCount is returned by New when the sub-authority list is
// empty or longer than MaxSubAuthorities.
var ErrSubAuthorityCount = errors.New("SID requires between 1 and 8 sub-authorities")

// SID owns one native security identifier buffer. The buffer is filled
// during construction and immutable afterwards. Concurrent read-only use
// is safe; concurrent Close of the same instance is not.
type SID struct {
	handle uintptr
	size   uint32
}

// Null is the null-handle sentinel. It compares equal only to itself by
// reference, IsValid reports false, and Close on it is a no-op.
var Null = &SID{}

// LMEM_FIXED | LMEM_ZEROINIT
const lptr = 0x0040

func alloc(n uint32) (*SID, error) {
	h, err := windows.LocalAlloc(lptr, n)
	if err != nil {
		return nil, err
	}
	return &SID{handle: h, size: n}, nil
}

// Dup copies an identifier owned elsewhere into a new handle. The source
// remains the caller's responsibility.
func Dup(src *windows.SID) (*SID, error) {
	if src == nil {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	n := getLengthSid(src)
	s, err := alloc(n)
	if err != nil {
		return nil, err
	}
	err = copySid(n, s.Raw(), src)
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// FromBytes copies an encoded identifier verbatim into a new handle. The
// bytes are not validated here; use IsValid.
func FromBytes(b []byte) (*SID, error) {
	if len(b) == 0 {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	s, err := alloc(uint32(len(b)))
	if err != nil {
		return nil, err
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(s.handle)), s.size), b)
	return s, nil
}

// Parse converts the textual "S-1-..." form into a new handle. The buffer
// the platform parses into is copied and freed immediately, so the handle
// never holds memory from a foreign allocator.
func Parse(stringSid string) (*SID, error) {
	if stringSid == "" {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	stringSid16, err := syscall.UTF16PtrFromString(stringSid)
	if err != nil {
		return nil, err
	}
	var raw *windows.SID
	err = convertStringSidToSid(stringSid16, &raw)
	if err != nil {
		return nil, err
	}
	s, err := Dup(raw)
	windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(raw))))
	return s, err
}

// New builds an identifier from an authority and between one and eight
// sub-authority values. The count limit is the platform's, checked before
// any allocation.
func New(authority windows.SidIdentifierAuthority, subAuthorities ...uint32) (*SID, error) {
	if len(subAuthorities) < 1 || len(subAuthorities) > MaxSubAuthorities {
		return nil, ErrSubAuthorityCount
	}
	var sub [MaxSubAuthorities]uint32
	copy(sub[:], subAuthorities)
	var raw *windows.SID
	err := allocateAndInitializeSid(&authority, byte(len(subAuthorities)), sub[0], sub[1], sub[2], sub[3], sub[4], sub[5], sub[6], sub[7], &raw)
	if err != nil {
		return nil, err
	}
	s, err := Dup(raw)
	freeSid(raw)
	return s, err
}

// Raw borrows the native address for passing to further interop calls. It
// does not transfer ownership: the SID must stay alive, and un-Closed, for
// as long as the returned pointer is in use.
func (s *SID) Raw() *windows.SID {
	if s == nil || s.handle == 0 {
		return nil
	}
	return (*windows.SID)(unsafe.Pointer(s.handle))
}

// IsValid reports whether the buffer passes the platform's structural
// check. The Null sentinel and closed handles report false.
func (s *SID) IsValid() bool {
	if s == nil || s.handle == 0 {
		return false
	}
	return isValidSid(s.Raw())
}

// Clone returns an independently owned handle with identical content.
func (s *SID) Clone() (*SID, error) {
	if s == nil || s.handle == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	return Dup(s.Raw())
}

// Equal reports platform-level identifier equality. Reference-equal
// instances short-circuit to true; a nil or closed side compares false.
func (s *SID) Equal(other *SID) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil || s.handle == 0 || other.handle == 0 {
		return false
	}
	return equalSid(s.Raw(), other.Raw())
}

// EqualRaw compares against a borrowed native identifier.
func (s *SID) EqualRaw(other *windows.SID) bool {
	if s == nil || s.handle == 0 || other == nil {
		return false
	}
	return equalSid(s.Raw(), other)
}

// Bytes returns a defensive copy of the owned buffer.
func (s *SID) Bytes() ([]byte, error) {
	if s == nil || s.handle == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	b := make([]byte, s.size)
	copy(b, unsafe.Slice((*byte)(unsafe.Pointer(s.handle)), s.size))
	return b, nil
}

// Length returns the recorded byte length of the buffer.
func (s *SID) Length() uint32 {
	if s == nil {
		return 0
	}
	return s.size
}

// Format converts the identifier to its canonical textual form.
func (s *SID) Format() (string, error) {
	if s == nil || s.handle == 0 {
		return "", windows.ERROR_INVALID_HANDLE
	}
	var stringSid16 *uint16
	err := convertSidToStringSid(s.Raw(), &stringSid16)
	if err != nil {
		return "", err
	}
	str := windows.UTF16PtrToString(stringSid16)
	windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(stringSid16))))
	return str, nil
}

// String implements fmt.Stringer. Conversion failures render as an empty
// string; use Format to observe the error.
func (s *SID) String() string {
	str, err := s.Format()
	if err != nil {
		return ""
	}
	return str
}

// SubAuthorityCount returns the number of sub-authority values.
func (s *SID) SubAuthorityCount() (byte, error) {
	if s == nil || s.handle == 0 {
		return 0, windows.ERROR_INVALID_HANDLE
	}
	return *getSidSubAuthorityCount(s.Raw()), nil
}

// SubAuthority returns the sub-authority value at the given index. The
// index must be below SubAuthorityCount.
func (s *SID) SubAuthority(index uint32) (uint32, error) {
	if s == nil || s.handle == 0 {
		return 0, windows.ERROR_INVALID_HANDLE
	}
	count, _ := s.SubAuthorityCount()
	if index >= uint32(count) {
		return 0, windows.ERROR_INVALID_PARAMETER
	}
	return *getSidSubAuthority(s.Raw(), index), nil
}

// IdentifierAuthority returns the 6-byte issuing authority value.
func (s *SID) IdentifierAuthority() (windows.SidIdentifierAuthority, error) {
	if s == nil || s.handle == 0 {
		return windows.SidIdentifierAuthority{}, windows.ERROR_INVALID_HANDLE
	}
	return *getSidIdentifierAuthority(s.Raw()), nil
}

// Close releases the buffer. It is idempotent: a second call is a no-op.
// Content accessors on a closed handle fail with ERROR_INVALID_HANDLE.
func (s *SID) Close() error {
	if s == nil || s.handle == 0 {
		return nil
	}
	_, err := windows.LocalFree(windows.Handle(s.handle))
	s.handle = 0
	s.size = 0
	return err
}
