/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

// Package ipc provides named-pipe listeners protected by caller-supplied
// security descriptors, for services that expose a local control surface
// to a restricted set of principals.
package ipc

import (
	"net"
	"time"

	"github.com/Microsoft/go-winio"

	"golang.zx2c4.com/winsec/sid"
)

const pipePrefix = `\\.\pipe\winsec\`

// SystemOnlySecurityDescriptor returns an SDDL descriptor owned by
// LocalSystem that grants GENERIC_ALL to LocalSystem alone.
func SystemOnlySecurityDescriptor() string {
	return "O:SYD:(A;;GA;;;SY)"
}

// SecurityDescriptorForOwner returns an SDDL descriptor owned by the
// given SID that grants GENERIC_ALL to that SID and to LocalSystem.
func SecurityDescriptorForOwner(owner *sid.SID) (string, error) {
	s, err := owner.Format()
	if err != nil {
		return "", err
	}
	return "O:" + s + "D:(A;;GA;;;" + s + ")(A;;GA;;;SY)", nil
}

type pipeListener struct {
	listener net.Listener
	connNew  chan net.Conn
	connErr  chan error
}

func (l *pipeListener) Accept() (net.Conn, error) {
	select {
	case conn := <-l.connNew:
		return conn, nil
	case err := <-l.connErr:
		return nil, err
	}
}

func (l *pipeListener) Close() error {
	return l.listener.Close()
}

func (l *pipeListener) Addr() net.Addr {
	return l.listener.Addr()
}

// Listen creates a named pipe under the winsec prefix protected by the
// given SDDL descriptor.
func Listen(name, sddl string) (net.Listener, error) {
	config := winio.PipeConfig{
		SecurityDescriptor: sddl,
	}
	listener, err := winio.ListenPipe(pipePrefix+name, &config)
	if err != nil {
		return nil, err
	}

	l := &pipeListener{
		listener: listener,
		connNew:  make(chan net.Conn, 1),
		connErr:  make(chan error, 1),
	}

	go func(l *pipeListener) {
		for {
			conn, err := l.listener.Accept()
			if err != nil {
				l.connErr <- err
				break
			}
			l.connNew <- conn
		}
	}(l)

	return l, nil
}

// Dial connects to a pipe created by Listen, waiting up to the given
// timeout for the pipe to become available.
func Dial(name string, timeout time.Duration) (net.Conn, error) {
	if timeout <= 0 {
		return winio.DialPipe(pipePrefix+name, nil)
	}
	return winio.DialPipe(pipePrefix+name, &timeout)
}
