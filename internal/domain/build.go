package domain

import "strings"

// BuildMode selects the compiler flag set.
type BuildMode string

const (
	BuildDebug      BuildMode = "debug"
	BuildProduction BuildMode = "production"
)

// BuildTarget selects which program is compiled.
type BuildTarget string

const (
	TargetMain BuildTarget = "main"
	TargetTest BuildTarget = "test"
)

// Invocation is one external process to run. Args[0] names the program.
type Invocation struct {
	Args []string
	// Dir is the working directory; empty means the runner's default.
	Dir string
	// Interactive marks children that expect a live terminal.
	Interactive bool
}

// CommandString joins the argument vector with single spaces.
func (i Invocation) CommandString() string {
	return strings.Join(i.Args, " ")
}
