/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package token

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestCurrentUser(t *testing.T) {
	tok, err := Current(windows.TOKEN_QUERY)
	if err != nil {
		t.Fatalf("Error calling Current: %s", err.Error())
	}
	defer tok.Close()

	user, err := tok.User()
	if err != nil {
		t.Fatalf("Error calling User: %s", err.Error())
	}
	defer user.Close()
	if !user.IsValid() {
		t.Error("Token user SID should be valid")
	}

	group, err := tok.PrimaryGroup()
	if err != nil {
		t.Fatalf("Error calling PrimaryGroup: %s", err.Error())
	}
	defer group.Close()
	if !group.IsValid() {
		t.Error("Token primary group SID should be valid")
	}
}

func TestGroups(t *testing.T) {
	tok, err := Current(windows.TOKEN_QUERY)
	if err != nil {
		t.Fatalf("Error calling Current: %s", err.Error())
	}
	defer tok.Close()

	groups, err := tok.Groups()
	if err != nil {
		t.Fatalf("Error calling Groups: %s", err.Error())
	}
	if len(groups) == 0 {
		t.Error("Token should belong to at least one group")
	}
	for _, g := range groups {
		if !g.SID.IsValid() {
			t.Errorf("Group SID %v should be valid", g.SID)
		}
		g.SID.Close()
	}
}

func TestPrivileges(t *testing.T) {
	tok, err := Current(windows.TOKEN_QUERY | windows.TOKEN_ADJUST_PRIVILEGES)
	if err != nil {
		t.Fatalf("Error calling Current: %s", err.Error())
	}
	defer tok.Close()

	privs, err := tok.Privileges()
	if err != nil {
		t.Fatalf("Error calling Privileges: %s", err.Error())
	}
	if len(privs) == 0 {
		t.Error("Token should hold at least one privilege")
	}
	for _, p := range privs {
		if p.Name == "" {
			t.Error("Privilege name should not be empty")
		}
	}

	// Every token holds SeChangeNotifyPrivilege.
	if err := tok.EnablePrivilege(SeChangeNotifyPrivilege); err != nil {
		t.Errorf("Error enabling SeChangeNotifyPrivilege: %s", err.Error())
	}
	enabled, err := tok.HasPrivilege(SeChangeNotifyPrivilege)
	if err != nil {
		t.Fatalf("Error calling HasPrivilege: %s", err.Error())
	}
	if !enabled {
		t.Error("SeChangeNotifyPrivilege should be enabled after EnablePrivilege")
	}

	// SeTcbPrivilege is never assigned to ordinary accounts.
	err = tok.EnablePrivilege(SeTcbPrivilege)
	if err != windows.ERROR_NOT_ALL_ASSIGNED {
		t.Errorf("Enabling an unheld privilege should fail with ERROR_NOT_ALL_ASSIGNED, got %v", err)
	}
}

func TestSessionID(t *testing.T) {
	tok, err := Current(windows.TOKEN_QUERY)
	if err != nil {
		t.Fatalf("Error calling Current: %s", err.Error())
	}
	defer tok.Close()

	if _, err := tok.SessionID(); err != nil {
		t.Errorf("Error calling SessionID: %s", err.Error())
	}
}

func TestDuplicateAndImpersonate(t *testing.T) {
	tok, err := Current(windows.TOKEN_QUERY | windows.TOKEN_DUPLICATE)
	if err != nil {
		t.Fatalf("Error calling Current: %s", err.Error())
	}
	defer tok.Close()

	dup, err := tok.Duplicate(windows.TOKEN_QUERY|windows.TOKEN_IMPERSONATE, windows.SecurityImpersonation, windows.TokenImpersonation)
	if err != nil {
		t.Fatalf("Error calling Duplicate: %s", err.Error())
	}
	defer dup.Close()

	if err := dup.Impersonate(); err != nil {
		t.Fatalf("Error calling Impersonate: %s", err.Error())
	}
	defer Revert()

	thread, err := CurrentThread(windows.TOKEN_QUERY, true)
	if err != nil {
		t.Fatalf("Error calling CurrentThread while impersonating: %s", err.Error())
	}
	defer thread.Close()

	u1, err := tok.User()
	if err != nil {
		t.Fatalf("Error calling User: %s", err.Error())
	}
	defer u1.Close()
	u2, err := thread.User()
	if err != nil {
		t.Fatalf("Error calling User on thread token: %s", err.Error())
	}
	defer u2.Close()
	if !u1.Equal(u2) {
		t.Error("Impersonated thread token should carry the same user")
	}
}

func TestDoubleClose(t *testing.T) {
	tok, err := Current(windows.TOKEN_QUERY)
	if err != nil {
		t.Fatalf("Error calling Current: %s", err.Error())
	}
	if err := tok.Close(); err != nil {
		t.Errorf("Error calling Close: %s", err.Error())
	}
	if err := tok.Close(); err != nil {
		t.Errorf("Second Close should be a no-op, got %v", err)
	}
	if _, err := tok.User(); err != windows.ERROR_INVALID_HANDLE {
		t.Errorf("User after Close should fail with ERROR_INVALID_HANDLE, got %v", err)
	}
}
