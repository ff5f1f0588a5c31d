/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package lsa

import (
	"testing"

	"golang.org/x/sys/windows"

	"golang.zx2c4.com/winsec/sid"
)

func TestOpenPolicy(t *testing.T) {
	p, err := OpenPolicy("", POLICY_VIEW_LOCAL_INFORMATION|POLICY_LOOKUP_NAMES)
	if err != nil {
		t.Fatalf("Error calling OpenPolicy: %s", err.Error())
	}
	if p.Raw() == 0 {
		t.Error("OpenPolicy should return a non-zero handle")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Error calling Close: %s", err.Error())
	}
	if err := p.Close(); err != nil {
		t.Errorf("Second Close should be a no-op, got %v", err)
	}
}

func TestEnumerateAccountRightsUnassigned(t *testing.T) {
	p, err := OpenPolicy("", POLICY_VIEW_LOCAL_INFORMATION|POLICY_LOOKUP_NAMES)
	if err != nil {
		t.Fatalf("Error calling OpenPolicy: %s", err.Error())
	}
	defer p.Close()

	// A made-up domain SID has no rights assigned.
	s, err := sid.Parse("S-1-5-21-1-2-3-4")
	if err != nil {
		t.Fatalf("Error calling sid.Parse: %s", err.Error())
	}
	defer s.Close()

	_, err = p.EnumerateAccountRights(s)
	if err != windows.ERROR_FILE_NOT_FOUND {
		t.Errorf("EnumerateAccountRights on an unknown account should fail with ERROR_FILE_NOT_FOUND, got %v", err)
	}
}

func TestAccountRightsRoundTrip(t *testing.T) {
	if !windows.GetCurrentProcessToken().IsElevated() {
		t.Skip("Modifying account rights requires elevation")
	}

	p, err := OpenPolicy("", POLICY_ALL_ACCESS)
	if err != nil {
		t.Fatalf("Error calling OpenPolicy: %s", err.Error())
	}
	defer p.Close()

	guest, err := sid.New(sid.NTAuthority, sid.BuiltinDomainRID, sid.GuestsRID)
	if err != nil {
		t.Fatalf("Error calling sid.New: %s", err.Error())
	}
	defer guest.Close()

	err = p.AddAccountRights(guest, []string{SeDenyBatchLogonRight})
	if err != nil {
		t.Fatalf("Error calling AddAccountRights: %s", err.Error())
	}
	defer p.RemoveAccountRights(guest, false, []string{SeDenyBatchLogonRight})

	rights, err := p.EnumerateAccountRights(guest)
	if err != nil {
		t.Fatalf("Error calling EnumerateAccountRights: %s", err.Error())
	}
	found := false
	for _, r := range rights {
		if r == SeDenyBatchLogonRight {
			found = true
		}
	}
	if !found {
		t.Errorf("EnumerateAccountRights returned %v, expected to contain %s", rights, SeDenyBatchLogonRight)
	}
}

func TestArgumentValidation(t *testing.T) {
	p, err := OpenPolicy("", POLICY_VIEW_LOCAL_INFORMATION|POLICY_LOOKUP_NAMES)
	if err != nil {
		t.Fatalf("Error calling OpenPolicy: %s", err.Error())
	}
	defer p.Close()

	if err := p.AddAccountRights(nil, []string{SeBatchLogonRight}); err != windows.ERROR_INVALID_PARAMETER {
		t.Errorf("AddAccountRights(nil, ...) should fail with ERROR_INVALID_PARAMETER, got %v", err)
	}
	s, err := sid.System()
	if err != nil {
		t.Fatalf("Error calling sid.System: %s", err.Error())
	}
	defer s.Close()
	if err := p.AddAccountRights(s, nil); err != windows.ERROR_INVALID_PARAMETER {
		t.Errorf("AddAccountRights with no rights should fail with ERROR_INVALID_PARAMETER, got %v", err)
	}
	if err := p.RemoveAccountRights(s, false, nil); err != windows.ERROR_INVALID_PARAMETER {
		t.Errorf("RemoveAccountRights with no rights should fail with ERROR_INVALID_PARAMETER, got %v", err)
	}
}
