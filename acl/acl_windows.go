/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

// Package acl wraps the advapi32 security descriptor and access control
// list surface: SDDL conversion, object security queries, and DACL
// editing. Descriptor and ACL buffers follow the same owning-handle
// discipline as package sid: platform-allocated results are copied into a
// buffer this package owns and the originals are freed immediately.
package acl

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"golang.zx2c4.com/winsec/sid"
)

//sys	convertStringSecurityDescriptorToSecurityDescriptor(str *uint16, revision uint32, sd *uintptr, size *uint32) (err error) = advapi32.ConvertStringSecurityDescriptorToSecurityDescriptorW
//sys	convertSecurityDescriptorToStringSecurityDescriptor(sd uintptr, revision uint32, secInfo SecurityInformation, sddl **uint16, sddlSize *uint32) (err error) = advapi32.ConvertSecurityDescriptorToStringSecurityDescriptorW
//sys	getSecurityDescriptorLength(sd uintptr) (n uint32) = advapi32.GetSecurityDescriptorLength
//sys	isValidSecurityDescriptor(sd uintptr) (valid bool) = advapi32.IsValidSecurityDescriptor
//sys	getSecurityDescriptorOwner(sd uintptr, owner **windows.SID, defaulted *int32) (err error) = advapi32.GetSecurityDescriptorOwner
//sys	getSecurityDescriptorGroup(sd uintptr, group **windows.SID, defaulted *int32) (err error) = advapi32.GetSecurityDescriptorGroup
//sys	getSecurityDescriptorDacl(sd uintptr, present *int32, dacl **windows.ACL, defaulted *int32) (err error) = advapi32.GetSecurityDescriptorDacl
//sys	getNamedSecurityInfo(name *uint16, objectType ObjectType, secInfo SecurityInformation, owner **windows.SID, group **windows.SID, dacl **windows.ACL, sacl **windows.ACL, sd *uintptr) (ret error) = advapi32.GetNamedSecurityInfoW
//sys	setNamedSecurityInfo(name *uint16, objectType ObjectType, secInfo SecurityInformation, owner *windows.SID, group *windows.SID, dacl *windows.ACL, sacl *windows.ACL) (ret error) = advapi32.SetNamedSecurityInfoW
//sys	setEntriesInAcl(count uint32, entries *windows.EXPLICIT_ACCESS, oldAcl *windows.ACL, newAcl **windows.ACL) (ret error) = advapi32.SetEntriesInAclW

// SecurityDescriptor owns one self-relative security descriptor buffer.
type SecurityDescriptor struct {
	handle uintptr
	size   uint32
}

// ACL owns one access control list buffer built by the platform.
type ACL struct {
	handle uintptr
	size   uint32
}

// LMEM_FIXED | LMEM_ZEROINIT
const lptr = 0x0040

// adopt copies a platform-allocated self-relative descriptor into our own
// allocation. The caller remains responsible for freeing the original.
func adopt(raw uintptr) (*SecurityDescriptor, error) {
	n := getSecurityDescriptorLength(raw)
	h, err := windows.LocalAlloc(lptr, n)
	if err != nil {
		return nil, err
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(h)), n), unsafe.Slice((*byte)(unsafe.Pointer(raw)), n))
	return &SecurityDescriptor{handle: h, size: n}, nil
}

// FromSDDL converts an SDDL string into an owned security descriptor.
func FromSDDL(sddl string) (*SecurityDescriptor, error) {
	sddl16, err := syscall.UTF16PtrFromString(sddl)
	if err != nil {
		return nil, err
	}
	var raw uintptr
	var size uint32
	err = convertStringSecurityDescriptorToSecurityDescriptor(sddl16, sddlRevision1, &raw, &size)
	if err != nil {
		return nil, err
	}
	d, err := adopt(raw)
	windows.LocalFree(windows.Handle(raw))
	return d, err
}

// GetNamedSecurityInfo retrieves the requested parts of a named object's
// security descriptor.
func GetNamedSecurityInfo(name string, objectType ObjectType, secInfo SecurityInformation) (*SecurityDescriptor, error) {
	name16, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	var raw uintptr
	err = getNamedSecurityInfo(name16, objectType, secInfo, nil, nil, nil, nil, &raw)
	if err != nil {
		return nil, err
	}
	d, err := adopt(raw)
	windows.LocalFree(windows.Handle(raw))
	return d, err
}

// SetNamedSecurityInfo writes the given parts of a named object's
// security descriptor. Any of owner, group, and dacl may be nil when the
// corresponding information flag is absent.
func SetNamedSecurityInfo(name string, objectType ObjectType, secInfo SecurityInformation, owner, group *sid.SID, dacl *ACL) error {
	name16, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	return setNamedSecurityInfo(name16, objectType, secInfo, owner.Raw(), group.Raw(), dacl.Raw(), nil)
}

// Raw borrows the native descriptor address for interop call sites. The
// handle must outlive all uses of the returned pointer.
func (d *SecurityDescriptor) Raw() *windows.SECURITY_DESCRIPTOR {
	if d == nil || d.handle == 0 {
		return nil
	}
	return (*windows.SECURITY_DESCRIPTOR)(unsafe.Pointer(d.handle))
}

// IsValid reports whether the platform accepts the descriptor's shape.
func (d *SecurityDescriptor) IsValid() bool {
	if d == nil || d.handle == 0 {
		return false
	}
	return isValidSecurityDescriptor(d.handle)
}

// Bytes returns a defensive copy of the descriptor buffer.
func (d *SecurityDescriptor) Bytes() ([]byte, error) {
	if d == nil || d.handle == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	b := make([]byte, d.size)
	copy(b, unsafe.Slice((*byte)(unsafe.Pointer(d.handle)), d.size))
	return b, nil
}

// SDDL renders the selected parts of the descriptor as an SDDL string.
func (d *SecurityDescriptor) SDDL(secInfo SecurityInformation) (string, error) {
	if d == nil || d.handle == 0 {
		return "", windows.ERROR_INVALID_HANDLE
	}
	var sddl16 *uint16
	var size uint32
	err := convertSecurityDescriptorToStringSecurityDescriptor(d.handle, sddlRevision1, secInfo, &sddl16, &size)
	if err != nil {
		return "", err
	}
	sddl := windows.UTF16PtrToString(sddl16)
	windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(sddl16))))
	return sddl, nil
}

// Owner returns an owned duplicate of the descriptor's owner SID, or nil
// if the descriptor carries none.
func (d *SecurityDescriptor) Owner() (*sid.SID, error) {
	if d == nil || d.handle == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	var owner *windows.SID
	var defaulted int32
	err := getSecurityDescriptorOwner(d.handle, &owner, &defaulted)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	return sid.Dup(owner)
}

// Group returns an owned duplicate of the descriptor's primary group SID,
// or nil if the descriptor carries none.
func (d *SecurityDescriptor) Group() (*sid.SID, error) {
	if d == nil || d.handle == 0 {
		return nil, windows.ERROR_INVALID_HANDLE
	}
	var group *windows.SID
	var defaulted int32
	err := getSecurityDescriptorGroup(d.handle, &group, &defaulted)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}
	return sid.Dup(group)
}

// DACL returns an owned copy of the descriptor's DACL. present is false
// when the descriptor has no DACL at all; a present but NULL DACL (full
// access to everyone) returns present true with a nil ACL.
func (d *SecurityDescriptor) DACL() (a *ACL, present bool, err error) {
	if d == nil || d.handle == 0 {
		return nil, false, windows.ERROR_INVALID_HANDLE
	}
	var presentRaw, defaulted int32
	var dacl *windows.ACL
	err = getSecurityDescriptorDacl(d.handle, &presentRaw, &dacl, &defaulted)
	if err != nil {
		return nil, false, err
	}
	if presentRaw == 0 || dacl == nil {
		return nil, presentRaw != 0, nil
	}
	a, err = dupACL(dacl)
	return a, true, err
}

// Close releases the descriptor buffer. It is idempotent.
func (d *SecurityDescriptor) Close() error {
	if d == nil || d.handle == 0 {
		return nil
	}
	_, err := windows.LocalFree(windows.Handle(d.handle))
	d.handle = 0
	d.size = 0
	return err
}

// ExplicitAccess is one access control entry to merge into a DACL. The
// trustee SID stays caller-owned.
type ExplicitAccess struct {
	Permissions uint32
	Mode        AccessMode
	Inheritance uint32
	Trustee     *sid.SID
}

func dupACL(raw *windows.ACL) (*ACL, error) {
	n := uint32((*aclHeader)(unsafe.Pointer(raw)).size)
	h, err := windows.LocalAlloc(lptr, n)
	if err != nil {
		return nil, err
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(h)), n), unsafe.Slice((*byte)(unsafe.Pointer(raw)), n))
	return &ACL{handle: h, size: n}, nil
}

// MergeEntries builds a new ACL from the given entries merged into an
// existing ACL, which may be nil to start from scratch. The platform
// allocation is copied and freed before return.
func MergeEntries(existing *ACL, entries []ExplicitAccess) (*ACL, error) {
	if len(entries) == 0 {
		return nil, windows.ERROR_INVALID_PARAMETER
	}
	native := make([]windows.EXPLICIT_ACCESS, len(entries))
	for i, e := range entries {
		if e.Trustee == nil || !e.Trustee.IsValid() {
			return nil, windows.ERROR_INVALID_PARAMETER
		}
		native[i] = windows.EXPLICIT_ACCESS{
			AccessPermissions: windows.ACCESS_MASK(e.Permissions),
			AccessMode:        windows.ACCESS_MODE(e.Mode),
			Inheritance:       uint32(e.Inheritance),
			Trustee: windows.TRUSTEE{
				TrusteeForm:  windows.TRUSTEE_IS_SID,
				TrusteeType:  windows.TRUSTEE_IS_UNKNOWN,
				TrusteeValue: windows.TrusteeValueFromSID(e.Trustee.Raw()),
			},
		}
	}
	var raw *windows.ACL
	err := setEntriesInAcl(uint32(len(native)), &native[0], existing.Raw(), &raw)
	if err != nil {
		return nil, err
	}
	a, err := dupACL(raw)
	windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(raw))))
	return a, err
}

// Raw borrows the native ACL address for interop call sites.
func (a *ACL) Raw() *windows.ACL {
	if a == nil || a.handle == 0 {
		return nil
	}
	return (*windows.ACL)(unsafe.Pointer(a.handle))
}

// EntryCount returns the number of ACEs in the list.
func (a *ACL) EntryCount() (uint16, error) {
	if a == nil || a.handle == 0 {
		return 0, windows.ERROR_INVALID_HANDLE
	}
	return (*aclHeader)(unsafe.Pointer(a.handle)).count, nil
}

// Close releases the ACL buffer. It is idempotent.
func (a *ACL) Close() error {
	if a == nil || a.handle == 0 {
		return nil
	}
	_, err := windows.LocalFree(windows.Handle(a.handle))
	a.handle = 0
	a.size = 0
	return err
}
