/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 WireGuard LLC. All Rights Reserved.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"

	"golang.zx2c4.com/winsec/acl"
	"golang.zx2c4.com/winsec/cred"
	"golang.zx2c4.com/winsec/sid"
	"golang.zx2c4.com/winsec/svcctl"
	"golang.zx2c4.com/winsec/token"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND ARG\n\nCommands:\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  sid ACCOUNT|S-STRING   resolve an account or parse a SID string")
	fmt.Fprintln(os.Stderr, "  sddl PATH              print a file's security descriptor as SDDL")
	fmt.Fprintln(os.Stderr, "  token                  print the current process token")
	fmt.Fprintln(os.Stderr, "  service NAME           print a service's state")
	fmt.Fprintln(os.Stderr, "  cred TARGET            print a stored credential's metadata")
	os.Exit(1)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func resolveSID(arg string) (*sid.SID, error) {
	if strings.HasPrefix(arg, "S-") {
		return sid.Parse(arg)
	}
	raw, _, _, err := windows.LookupSID("", arg)
	if err != nil {
		return nil, err
	}
	return sid.Dup(raw)
}

func printSID(arg string) {
	s, err := resolveSID(arg)
	if err != nil {
		fatal(err)
	}
	defer s.Close()
	count, err := s.SubAuthorityCount()
	if err != nil {
		fatal(err)
	}
	fmt.Println(s)
	fmt.Printf("valid: %t, sub-authorities: %d, length: %d bytes\n", s.IsValid(), count, s.Length())
}

func printSDDL(path string) {
	d, err := acl.GetNamedSecurityInfo(path, acl.SE_FILE_OBJECT,
		acl.OWNER_SECURITY_INFORMATION|acl.GROUP_SECURITY_INFORMATION|acl.DACL_SECURITY_INFORMATION)
	if err != nil {
		fatal(err)
	}
	defer d.Close()
	sddl, err := d.SDDL(acl.OWNER_SECURITY_INFORMATION | acl.GROUP_SECURITY_INFORMATION | acl.DACL_SECURITY_INFORMATION)
	if err != nil {
		fatal(err)
	}
	fmt.Println(sddl)
}

func printToken() {
	tok, err := token.Current(windows.TOKEN_QUERY)
	if err != nil {
		fatal(err)
	}
	defer tok.Close()

	user, err := tok.User()
	if err != nil {
		fatal(err)
	}
	defer user.Close()
	fmt.Printf("user: %v\n", user)
	fmt.Printf("elevated: %t\n", tok.IsElevated())

	groups, err := tok.Groups()
	if err != nil {
		fatal(err)
	}
	fmt.Println("groups:")
	for _, g := range groups {
		fmt.Printf("  %v\n", g.SID)
		g.SID.Close()
	}

	privs, err := tok.Privileges()
	if err != nil {
		fatal(err)
	}
	fmt.Println("privileges:")
	for _, p := range privs {
		state := "disabled"
		if p.Enabled {
			state = "enabled"
		}
		fmt.Printf("  %s (%s)\n", p.Name, state)
	}
}

func printService(name string) {
	status, err := svcctl.Status(name)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("state: %d, pid: %d\n", status.State, status.ProcessId)
}

func printCred(target string) {
	c, err := cred.Read(target, cred.CRED_TYPE_GENERIC)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("target: %s\nuser: %s\ntype: %d, persist: %d\nlast written: %v\nsecret: %d bytes\n",
		c.TargetName, c.UserName, c.Type, c.Persist, c.LastWritten, len(c.Secret))
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "sid":
		if len(os.Args) != 3 {
			usage()
		}
		printSID(os.Args[2])
	case "sddl":
		if len(os.Args) != 3 {
			usage()
		}
		printSDDL(os.Args[2])
	case "token":
		printToken()
	case "service":
		if len(os.Args) != 3 {
			usage()
		}
		printService(os.Args[2])
	case "cred":
		if len(os.Args) != 3 {
			usage()
		}
		printCred(os.Args[2])
	default:
		usage()
	}
}
