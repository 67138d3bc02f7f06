// Package api provides the Lua modules exposed to plugin scripts.
//
// Each module implements Module and is injected into a script's Lua state
// by a Registry, which skips modules whose capability the script's
// PermissionChecker lacks. Injected modules are gathered into the
// "keyreg" package:
//
//	local keyreg = require("keyreg")
//	local reg = keyreg.reg
//
//	reg.set("a", "hello")
//	reg.set("A", " world")          -- append
//	print(reg.get("a"))             -- hello world   char
//
//	reg.yank("line one\n", "line")  -- "0 and the default register
//	reg.delete("x")                 -- "- for a small delete
//
//	reg.select("b")
//	print(reg.active())             -- b
//	reg.reset()
//
//	print(reg.cd("../tmp"))         -- /tmp from /home
//
// The reg module requires the editor.registers capability. Reading or
// writing the "+ and "* registers additionally requires clipboard.
package api
