// Package project holds metadata about the parser-fixtures project
package project

const (
	// Name is the name of the project
	Name = "parser-fixtures"

	// Version is the version of the project
	Version = "v0.1.0"
)
