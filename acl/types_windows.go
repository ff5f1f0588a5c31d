/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package acl

// ObjectType is the SE_OBJECT_TYPE enumeration identifying the kind of
// securable object a name refers to.
type ObjectType uint32

const (
	SE_UNKNOWN_OBJECT_TYPE ObjectType = iota
	SE_FILE_OBJECT
	SE_SERVICE
	SE_PRINTER
	SE_REGISTRY_KEY
	SE_LMSHARE
	SE_KERNEL_OBJECT
	SE_WINDOW_OBJECT
	SE_DS_OBJECT
	SE_DS_OBJECT_ALL
	SE_PROVIDER_DEFINED_OBJECT
	SE_WMIGUID_OBJECT
	SE_REGISTRY_WOW64_32KEY
)

// AccessMode is the ACCESS_MODE enumeration used by explicit access
// entries.
type AccessMode uint32

const (
	NOT_USED_ACCESS AccessMode = iota
	GRANT_ACCESS
	SET_ACCESS
	DENY_ACCESS
	REVOKE_ACCESS
	SET_AUDIT_SUCCESS
	SET_AUDIT_FAILURE
)

// SecurityInformation selects which parts of a security descriptor an
// operation reads or writes.
type SecurityInformation uint32

const (
	OWNER_SECURITY_INFORMATION            SecurityInformation = 0x00000001
	GROUP_SECURITY_INFORMATION            SecurityInformation = 0x00000002
	DACL_SECURITY_INFORMATION             SecurityInformation = 0x00000004
	SACL_SECURITY_INFORMATION             SecurityInformation = 0x00000008
	LABEL_SECURITY_INFORMATION            SecurityInformation = 0x00000010
	ATTRIBUTE_SECURITY_INFORMATION        SecurityInformation = 0x00000020
	SCOPE_SECURITY_INFORMATION            SecurityInformation = 0x00000040
	PROTECTED_DACL_SECURITY_INFORMATION   SecurityInformation = 0x80000000
	PROTECTED_SACL_SECURITY_INFORMATION   SecurityInformation = 0x40000000
	UNPROTECTED_DACL_SECURITY_INFORMATION SecurityInformation = 0x20000000
	UNPROTECTED_SACL_SECURITY_INFORMATION SecurityInformation = 0x10000000
)

// Inheritance flags for explicit access entries.
const (
	NO_INHERITANCE                     = 0x0
	SUB_OBJECTS_ONLY_INHERIT           = 0x1
	SUB_CONTAINERS_ONLY_INHERIT        = 0x2
	SUB_CONTAINERS_AND_OBJECTS_INHERIT = 0x3
	INHERIT_NO_PROPAGATE               = 0x4
	INHERIT_ONLY                       = 0x8
	OBJECT_INHERIT_ACE                 = 0x1
	CONTAINER_INHERIT_ACE              = 0x2
	NO_PROPAGATE_INHERIT_ACE           = 0x4
	INHERIT_ONLY_ACE                   = 0x8
)

const sddlRevision1 = 1

// aclHeader mirrors the fixed prefix of the winnt.h ACL structure, used
// only to read the allocation size of a platform-built ACL.
type aclHeader struct {
	revision byte
	sbz1     byte
	size     uint16
	count    uint16
	sbz2     uint16
}
