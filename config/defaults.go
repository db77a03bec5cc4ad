package config

import "github.com/philipp01105/couchlog/formatter"

// Default returns the options used when nothing is configured
func Default() Options {
	return Options{
		Format:   formatter.DefaultWithLocalTime.String(),
		MinLevel: "information",
		Warnings: Warnings{
			DefaultBehavior: "log",
		},
	}
}
