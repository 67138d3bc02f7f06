// Package security provides capability checks for plugin scripts.
//
// Capabilities are dotted strings. Granting "editor" implies
// "editor.registers"; granting "editor.registers" does not imply "editor".
//
//	pc := security.NewPermissionChecker("init.lua")
//	pc.Grant(security.CapabilityRegisters)
//	if err := pc.CheckClipboard("read"); err != nil {
//	    // *CapabilityError
//	}
package security
