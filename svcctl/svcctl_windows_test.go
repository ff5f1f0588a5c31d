/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package svcctl

import (
	"fmt"
	"os"
	"testing"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

func TestList(t *testing.T) {
	services, err := List()
	if err != nil {
		t.Fatalf("Error calling List: %s", err.Error())
	}
	if len(services) == 0 {
		t.Error("List should return at least one service")
	}
}

func TestStatusWellKnown(t *testing.T) {
	status, err := Status("EventLog")
	if err != nil {
		t.Fatalf("Error calling Status: %s", err.Error())
	}
	if status.State != svc.Running {
		t.Errorf("EventLog state is %d, expected running", status.State)
	}
}

func TestStatusMissing(t *testing.T) {
	_, err := Status("winsec-no-such-service")
	if err == nil {
		t.Error("Status of a missing service should fail")
	}
}

func TestInstallRemove(t *testing.T) {
	if !windows.GetCurrentProcessToken().IsElevated() {
		t.Skip("Installing services requires elevation")
	}

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("Error resolving test executable: %s", err.Error())
	}
	name := fmt.Sprintf("winsec-test-%d", os.Getpid())

	err = Install(Config{
		Name:        name,
		DisplayName: "winsec test service",
		Description: "created by winsec tests, safe to delete",
		BinaryPath:  exe,
		StartType:   mgr.StartManual,
	})
	if err != nil {
		t.Fatalf("Error calling Install: %s", err.Error())
	}
	defer Remove(name)

	status, err := Status(name)
	if err != nil {
		t.Fatalf("Error calling Status: %s", err.Error())
	}
	if status.State != svc.Stopped {
		t.Errorf("Freshly installed service state is %d, expected stopped", status.State)
	}

	if err := Remove(name); err != nil {
		t.Errorf("Error calling Remove: %s", err.Error())
	}
}

func TestInstallValidation(t *testing.T) {
	if err := Install(Config{}); err != windows.ERROR_INVALID_PARAMETER {
		t.Errorf("Install without name and binary should fail with ERROR_INVALID_PARAMETER, got %v", err)
	}
}
