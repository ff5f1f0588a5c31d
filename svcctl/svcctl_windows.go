/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

// Package svcctl wraps the service control manager for installing,
// removing, and driving Windows services, including failure recovery
// configuration.
package svcctl

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

// Config describes a service to install.
type Config struct {
	Name             string
	DisplayName      string
	Description      string
	BinaryPath       string
	Args             []string
	StartType        uint32
	DelayedAutoStart bool
	Dependencies     []string
	// RestartOnFailure configures the service to restart after the given
	// delay on each of its first three failures, with the failure count
	// resetting after a day.
	RestartOnFailure time.Duration
}

const stopTimeout = 30 * time.Second

// Install registers the service described by cfg. The service is not
// started.
func Install(cfg Config) error {
	if cfg.Name == "" || cfg.BinaryPath == "" {
		return windows.ERROR_INVALID_PARAMETER
	}
	m, err := mgr.Connect()
	if err != nil {
		return err
	}
	defer m.Disconnect()

	s, err := m.CreateService(cfg.Name, cfg.BinaryPath, mgr.Config{
		ServiceType:      windows.SERVICE_WIN32_OWN_PROCESS,
		StartType:        cfg.StartType,
		ErrorControl:     mgr.ErrorNormal,
		DisplayName:      cfg.DisplayName,
		Description:      cfg.Description,
		Dependencies:     cfg.Dependencies,
		DelayedAutoStart: cfg.DelayedAutoStart,
	}, cfg.Args...)
	if err != nil {
		return err
	}
	defer s.Close()

	if cfg.RestartOnFailure > 0 {
		restart := mgr.RecoveryAction{Type: mgr.ServiceRestart, Delay: cfg.RestartOnFailure}
		err = s.SetRecoveryActions([]mgr.RecoveryAction{restart, restart, restart}, 24*60*60)
		if err != nil {
			s.Delete()
			return err
		}
	}
	return nil
}

// Remove stops the service if needed and deletes its registration.
func Remove(name string) error {
	m, err := mgr.Connect()
	if err != nil {
		return err
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return err
	}
	defer s.Close()

	status, err := s.Query()
	if err == nil && status.State != svc.Stopped {
		s.Control(svc.Stop)
	}
	return s.Delete()
}

// Start starts the named service with the given arguments.
func Start(name string, args ...string) error {
	m, err := mgr.Connect()
	if err != nil {
		return err
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Start(args...)
}

// Stop sends a stop control and waits for the service to reach the
// stopped state.
func Stop(name string) error {
	m, err := mgr.Connect()
	if err != nil {
		return err
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return err
	}
	defer s.Close()

	status, err := s.Control(svc.Stop)
	if err != nil {
		return err
	}
	deadline := time.Now().Add(stopTimeout)
	for status.State != svc.Stopped {
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for service %s to stop", name)
		}
		time.Sleep(300 * time.Millisecond)
		status, err = s.Query()
		if err != nil {
			return err
		}
	}
	return nil
}

// Status queries the current state of the named service.
func Status(name string) (svc.Status, error) {
	m, err := mgr.Connect()
	if err != nil {
		return svc.Status{}, err
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return svc.Status{}, err
	}
	defer s.Close()
	return s.Query()
}

// List returns the names of all installed services.
func List() ([]string, error) {
	m, err := mgr.Connect()
	if err != nil {
		return nil, err
	}
	defer m.Disconnect()
	return m.ListServices()
}

// ParameterString reads a string value from the service's Parameters
// registry key.
func ParameterString(serviceName, valueName string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SYSTEM\CurrentControlSet\Services\`+serviceName+`\Parameters`, registry.READ)
	if err != nil {
		return "", err
	}
	defer key.Close()
	value, _, err := key.GetStringValue(valueName)
	return value, err
}
