/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package sid

import (
	"golang.org/x/sys/windows"
)

const (
	// Revision is the only SID revision the platform has ever defined.
	Revision = 1

	// MaxSubAuthorities is the platform cap on sub-authority values per SID.
	MaxSubAuthorities = 8

	// MaxSidSize is the byte length of the largest possible SID
	// (SECURITY_MAX_SID_SIZE from winnt.h).
	MaxSidSize = 68

	// MinSidSize is the byte length of a SID with no sub-authorities.
	MinSidSize = 8
)

// Well-known identifier authorities from winnt.h.
var (
	NullAuthority            = windows.SidIdentifierAuthority{Value: [6]byte{0, 0, 0, 0, 0, 0}}
	WorldAuthority           = windows.SidIdentifierAuthority{Value: [6]byte{0, 0, 0, 0, 0, 1}}
	LocalAuthority           = windows.SidIdentifierAuthority{Value: [6]byte{0, 0, 0, 0, 0, 2}}
	CreatorAuthority         = windows.SidIdentifierAuthority{Value: [6]byte{0, 0, 0, 0, 0, 3}}
	NTAuthority              = windows.SidIdentifierAuthority{Value: [6]byte{0, 0, 0, 0, 0, 5}}
	ResourceManagerAuthority = windows.SidIdentifierAuthority{Value: [6]byte{0, 0, 0, 0, 0, 9}}
	MandatoryLabelAuthority  = windows.SidIdentifierAuthority{Value: [6]byte{0, 0, 0, 0, 0, 16}}
)

// Relative identifiers under NTAuthority.
const (
	DialupRID            = 1
	NetworkRID           = 2
	BatchRID             = 3
	InteractiveRID       = 4
	ServiceRID           = 6
	AnonymousLogonRID    = 7
	AuthenticatedUserRID = 11
	LocalSystemRID       = 18
	LocalServiceRID      = 19
	NetworkServiceRID    = 20
	BuiltinDomainRID     = 32
	AdministratorsRID    = 544
	UsersRID             = 545
	GuestsRID            = 546
	BackupOperatorsRID   = 551
)

// System returns S-1-5-18, the LocalSystem account.
func System() (*SID, error) {
	return New(NTAuthority, LocalSystemRID)
}

// Administrators returns S-1-5-32-544, the built-in Administrators group.
func Administrators() (*SID, error) {
	return New(NTAuthority, BuiltinDomainRID, AdministratorsRID)
}

// Everyone returns S-1-1-0, the World SID.
func Everyone() (*SID, error) {
	return New(WorldAuthority, 0)
}
