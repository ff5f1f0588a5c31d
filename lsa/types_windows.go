/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package lsa

import (
	"golang.org/x/sys/windows"
)

// PolicyAccess is the access mask for LsaOpenPolicy.
type PolicyAccess uint32

const (
	POLICY_VIEW_LOCAL_INFORMATION   PolicyAccess = 0x00000001
	POLICY_VIEW_AUDIT_INFORMATION   PolicyAccess = 0x00000002
	POLICY_GET_PRIVATE_INFORMATION  PolicyAccess = 0x00000004
	POLICY_TRUST_ADMIN              PolicyAccess = 0x00000008
	POLICY_CREATE_ACCOUNT           PolicyAccess = 0x00000010
	POLICY_CREATE_SECRET            PolicyAccess = 0x00000020
	POLICY_CREATE_PRIVILEGE         PolicyAccess = 0x00000040
	POLICY_SET_DEFAULT_QUOTA_LIMITS PolicyAccess = 0x00000080
	POLICY_SET_AUDIT_REQUIREMENTS   PolicyAccess = 0x00000100
	POLICY_AUDIT_LOG_ADMIN          PolicyAccess = 0x00000200
	POLICY_SERVER_ADMIN             PolicyAccess = 0x00000400
	POLICY_LOOKUP_NAMES             PolicyAccess = 0x00000800
	POLICY_NOTIFICATION             PolicyAccess = 0x00001000

	POLICY_ALL_ACCESS = PolicyAccess(windows.STANDARD_RIGHTS_REQUIRED) |
		POLICY_VIEW_LOCAL_INFORMATION | POLICY_VIEW_AUDIT_INFORMATION |
		POLICY_GET_PRIVATE_INFORMATION | POLICY_TRUST_ADMIN |
		POLICY_CREATE_ACCOUNT | POLICY_CREATE_SECRET | POLICY_CREATE_PRIVILEGE |
		POLICY_SET_DEFAULT_QUOTA_LIMITS | POLICY_SET_AUDIT_REQUIREMENTS |
		POLICY_AUDIT_LOG_ADMIN | POLICY_SERVER_ADMIN | POLICY_LOOKUP_NAMES
)

// Account right names from ntsecapi.h.
const (
	SeBatchLogonRight                 = "SeBatchLogonRight"
	SeDenyBatchLogonRight             = "SeDenyBatchLogonRight"
	SeDenyInteractiveLogonRight       = "SeDenyInteractiveLogonRight"
	SeDenyNetworkLogonRight           = "SeDenyNetworkLogonRight"
	SeDenyRemoteInteractiveLogonRight = "SeDenyRemoteInteractiveLogonRight"
	SeDenyServiceLogonRight           = "SeDenyServiceLogonRight"
	SeInteractiveLogonRight           = "SeInteractiveLogonRight"
	SeNetworkLogonRight               = "SeNetworkLogonRight"
	SeRemoteInteractiveLogonRight     = "SeRemoteInteractiveLogonRight"
	SeServiceLogonRight               = "SeServiceLogonRight"
)

type lsaUnicodeString struct {
	Length        uint16
	MaximumLength uint16
	Buffer        *uint16
}

type lsaObjectAttributes struct {
	Length                   uint32
	RootDirectory            windows.Handle
	ObjectName               *lsaUnicodeString
	Attributes               uint32
	SecurityDescriptor       uintptr
	SecurityQualityOfService uintptr
}
