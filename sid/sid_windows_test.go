/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package sid

import (
	"bytes"
	"testing"

	"golang.org/x/sys/windows"
)

func TestNewLocalSystem(t *testing.T) {
	s, err := New(NTAuthority, LocalSystemRID)
	if err != nil {
		t.Fatalf("Error calling New: %s", err.Error())
	}
	defer s.Close()

	if !s.IsValid() {
		t.Error("New returned an invalid SID")
	}

	str, err := s.Format()
	if err != nil {
		t.Fatalf("Error calling Format: %s", err.Error())
	}
	if str != "S-1-5-18" {
		t.Errorf("Format returned %q, expected S-1-5-18", str)
	}

	count, err := s.SubAuthorityCount()
	if err != nil {
		t.Fatalf("Error calling SubAuthorityCount: %s", err.Error())
	}
	if count != 1 {
		t.Errorf("SubAuthorityCount returned %d, expected 1", count)
	}

	sub, err := s.SubAuthority(0)
	if err != nil {
		t.Fatalf("Error calling SubAuthority: %s", err.Error())
	}
	if sub != LocalSystemRID {
		t.Errorf("SubAuthority(0) returned %d, expected %d", sub, LocalSystemRID)
	}

	authority, err := s.IdentifierAuthority()
	if err != nil {
		t.Fatalf("Error calling IdentifierAuthority: %s", err.Error())
	}
	if authority != NTAuthority {
		t.Errorf("IdentifierAuthority returned %v, expected NT authority", authority)
	}
}

func TestNewSubAuthorityLimits(t *testing.T) {
	_, err := New(NTAuthority)
	if err != ErrSubAuthorityCount {
		t.Errorf("New with no sub-authorities should fail with ErrSubAuthorityCount, got %v", err)
	}

	_, err = New(NTAuthority, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err != ErrSubAuthorityCount {
		t.Errorf("New with nine sub-authorities should fail with ErrSubAuthorityCount, got %v", err)
	}

	s, err := New(NTAuthority, 1, 2, 3, 4, 5, 6, 7, 8)
	if err != nil {
		t.Fatalf("Error calling New with eight sub-authorities: %s", err.Error())
	}
	defer s.Close()
	count, _ := s.SubAuthorityCount()
	if count != 8 {
		t.Errorf("SubAuthorityCount returned %d, expected 8", count)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	s, err := New(NTAuthority, BuiltinDomainRID, AdministratorsRID)
	if err != nil {
		t.Fatalf("Error calling New: %s", err.Error())
	}
	defer s.Close()

	b, err := s.Bytes()
	if err != nil {
		t.Fatalf("Error calling Bytes: %s", err.Error())
	}
	if uint32(len(b)) != s.Length() {
		t.Errorf("Bytes returned %d bytes, expected %d", len(b), s.Length())
	}

	s2, err := FromBytes(b)
	if err != nil {
		t.Fatalf("Error calling FromBytes: %s", err.Error())
	}
	defer s2.Close()

	b2, err := s2.Bytes()
	if err != nil {
		t.Fatalf("Error calling Bytes: %s", err.Error())
	}
	if !bytes.Equal(b, b2) {
		t.Error("FromBytes/Bytes round trip altered content")
	}
	if !s.Equal(s2) {
		t.Error("FromBytes copy should compare equal to its source")
	}

	// The returned slice is a defensive copy.
	b2[0] ^= 0xff
	b3, _ := s2.Bytes()
	if bytes.Equal(b2, b3) {
		t.Error("Bytes should return an independent copy")
	}
}

func TestStringRoundTrip(t *testing.T) {
	s, err := Parse("S-1-5-21-3623811015-3361044348-30300820-1013")
	if err != nil {
		t.Fatalf("Error calling Parse: %s", err.Error())
	}
	defer s.Close()

	str, err := s.Format()
	if err != nil {
		t.Fatalf("Error calling Format: %s", err.Error())
	}
	s2, err := Parse(str)
	if err != nil {
		t.Fatalf("Error calling Parse: %s", err.Error())
	}
	defer s2.Close()

	if !s.Equal(s2) {
		t.Error("Format/Parse round trip should compare equal")
	}
	b, _ := s.Bytes()
	b2, _ := s2.Bytes()
	if !bytes.Equal(b, b2) {
		t.Error("Format/Parse round trip altered content")
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("S-1-not-a-sid")
	if err == nil {
		t.Error("Parse of malformed input should fail")
	}
}

func TestClone(t *testing.T) {
	s, err := System()
	if err != nil {
		t.Fatalf("Error calling System: %s", err.Error())
	}
	defer s.Close()

	c, err := s.Clone()
	if err != nil {
		t.Fatalf("Error calling Clone: %s", err.Error())
	}
	defer c.Close()

	if c == s {
		t.Error("Clone should return a distinct instance")
	}
	if c.Raw() == s.Raw() {
		t.Error("Clone should own a distinct allocation")
	}
	if !s.Equal(c) || !c.Equal(s) {
		t.Error("Clone should compare equal to its source")
	}
}

func TestEqual(t *testing.T) {
	s, err := Everyone()
	if err != nil {
		t.Fatalf("Error calling Everyone: %s", err.Error())
	}
	defer s.Close()

	if !s.Equal(s) {
		t.Error("Equal should be reflexive")
	}
	if s.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
	if s.EqualRaw(nil) {
		t.Error("EqualRaw(nil) should be false")
	}
	if !s.EqualRaw(s.Raw()) {
		t.Error("EqualRaw against own raw address should be true")
	}

	other, err := System()
	if err != nil {
		t.Fatalf("Error calling System: %s", err.Error())
	}
	defer other.Close()
	if s.Equal(other) {
		t.Error("Everyone and LocalSystem should not compare equal")
	}
}

func TestNullSentinel(t *testing.T) {
	if Null.IsValid() {
		t.Error("IsValid on the null sentinel should be false")
	}
	if !Null.Equal(Null) {
		t.Error("Null should equal itself by reference")
	}

	s, err := System()
	if err != nil {
		t.Fatalf("Error calling System: %s", err.Error())
	}
	defer s.Close()
	if Null.Equal(s) || s.Equal(Null) {
		t.Error("Null should not equal any constructed SID")
	}
	if err := Null.Close(); err != nil {
		t.Errorf("Close on the null sentinel should be a no-op, got %v", err)
	}
}

func TestDoubleClose(t *testing.T) {
	s, err := System()
	if err != nil {
		t.Fatalf("Error calling System: %s", err.Error())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Error calling Close: %s", err.Error())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Second Close should be a no-op, got %v", err)
	}

	if _, err := s.Bytes(); err != windows.ERROR_INVALID_HANDLE {
		t.Errorf("Bytes after Close should fail with ERROR_INVALID_HANDLE, got %v", err)
	}
	if _, err := s.Format(); err != windows.ERROR_INVALID_HANDLE {
		t.Errorf("Format after Close should fail with ERROR_INVALID_HANDLE, got %v", err)
	}
	if _, err := s.Clone(); err != windows.ERROR_INVALID_HANDLE {
		t.Errorf("Clone after Close should fail with ERROR_INVALID_HANDLE, got %v", err)
	}
	if s.IsValid() {
		t.Error("IsValid after Close should be false")
	}
}

func TestFromBytesLazyValidation(t *testing.T) {
	s, err := FromBytes([]byte{0xde, 0xad, 0xbe, 0xef})
	if err != nil {
		t.Fatalf("Error calling FromBytes: %s", err.Error())
	}
	defer s.Close()
	if s.IsValid() {
		t.Error("IsValid on garbage bytes should be false")
	}

	_, err = FromBytes(nil)
	if err != windows.ERROR_INVALID_PARAMETER {
		t.Errorf("FromBytes(nil) should fail with ERROR_INVALID_PARAMETER, got %v", err)
	}
}

func TestDup(t *testing.T) {
	s, err := Administrators()
	if err != nil {
		t.Fatalf("Error calling Administrators: %s", err.Error())
	}
	defer s.Close()

	d, err := Dup(s.Raw())
	if err != nil {
		t.Fatalf("Error calling Dup: %s", err.Error())
	}
	defer d.Close()
	if !d.Equal(s) {
		t.Error("Dup should compare equal to its source")
	}

	_, err = Dup(nil)
	if err != windows.ERROR_INVALID_PARAMETER {
		t.Errorf("Dup(nil) should fail with ERROR_INVALID_PARAMETER, got %v", err)
	}
}
