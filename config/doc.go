// Package config decodes logging options for the driver.
//
// Options mirror what an application puts in its TOML configuration:
//
//	format = "level,id,category,localtime"
//	min_level = "information"
//
//	[warnings]
//	default_behavior = "throw"
//
//	[[warnings.events]]
//	id = 10000
//	level = "warning"
//	behavior = "log"
//
// Decode reads options from any io.Reader, starting from Default and
// rejecting unknown keys. Locating and opening the file is left to the
// caller. Options.WarningsConfiguration, Options.Filter and Options.NewLogger turn the
// decoded values into the event and logger types.
package config
