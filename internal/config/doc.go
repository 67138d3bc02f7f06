// Package config loads the session configuration.
//
// Configuration is layered, higher layers overriding lower:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. KEYREG_* environment variables
//
// A missing file is not an error; the defaults apply.
//
// # Example
//
//	[registers]
//	cwd = "/home/me"
//	clipboard = true
//	default_register = "+"
//	list_width = 80
//
//	[logging]
//	level = "debug"
//
//	[plugins]
//	scripts = ["init.lua"]
package config
