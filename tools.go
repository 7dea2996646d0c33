//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
import (
	_ "github.com/99designs/gqlgen"
)
