// Package config provides the configuration for chessterm.
//
// Configuration is layered: built-in defaults first, then an optional file
// whose extension selects the format (.toml, .yaml or .yml). A missing
// file leaves the defaults in place.
//
//	[log]
//	level = "debug"
//	file = "/tmp/chessterm.log"
//
//	[keys]
//	quit = "<C-c>"
//	move_enabled = true
//
//	[board]
//	width = 34
//	height = 18
//	title = "Chess"
//	visible = true
//	title_color = "#e0b050"
//
// Load validates the merged result; a *ValidationError names the first
// offending setting.
package config
