// Package bootstrap makes pip itself available in an interpreter that
// ships without it. Two mutually exclusive strategies exist: Ensurepip
// uses the interpreter's bundled module, GetPip downloads the official
// bootstrap script and runs it as a child process.
package bootstrap

import "context"

// Strategy is the capability the requirements manager calls when pip is
// absent. Bootstrap never returns an error: every failure is logged at the
// point it happens and reported as false.
type Strategy interface {
	Bootstrap(ctx context.Context) bool
	Name() string
}
