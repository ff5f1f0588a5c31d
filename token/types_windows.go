/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package token

import (
	"golang.zx2c4.com/winsec/sid"
)

// GroupEntry is one group membership of a token.
type GroupEntry struct {
	SID        *sid.SID
	Attributes uint32
}

// Privilege is one named token privilege and its enabled state.
type Privilege struct {
	Name    string
	Enabled bool
}

// SE_GROUP attribute flags from winnt.h.
const (
	SE_GROUP_MANDATORY          = 0x00000001
	SE_GROUP_ENABLED_BY_DEFAULT = 0x00000002
	SE_GROUP_ENABLED            = 0x00000004
	SE_GROUP_OWNER              = 0x00000008
	SE_GROUP_USE_FOR_DENY_ONLY  = 0x00000010
	SE_GROUP_INTEGRITY          = 0x00000020
	SE_GROUP_INTEGRITY_ENABLED  = 0x00000040
	SE_GROUP_LOGON_ID           = 0xC0000000
	SE_GROUP_RESOURCE           = 0x20000000
)

// Privilege name constants from winnt.h.
const (
	SeAssignPrimaryTokenPrivilege = "SeAssignPrimaryTokenPrivilege"
	SeBackupPrivilege             = "SeBackupPrivilege"
	SeChangeNotifyPrivilege       = "SeChangeNotifyPrivilege"
	SeCreateSymbolicLinkPrivilege = "SeCreateSymbolicLinkPrivilege"
	SeDebugPrivilege              = "SeDebugPrivilege"
	SeImpersonatePrivilege        = "SeImpersonatePrivilege"
	SeIncreaseQuotaPrivilege      = "SeIncreaseQuotaPrivilege"
	SeLoadDriverPrivilege         = "SeLoadDriverPrivilege"
	SeRestorePrivilege            = "SeRestorePrivilege"
	SeSecurityPrivilege           = "SeSecurityPrivilege"
	SeShutdownPrivilege           = "SeShutdownPrivilege"
	SeTakeOwnershipPrivilege      = "SeTakeOwnershipPrivilege"
	SeTcbPrivilege                = "SeTcbPrivilege"
)
