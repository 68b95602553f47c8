//go:build tools

// Package household_intranet pins the tools run by go generate, mockgen for
// the repository, claim and dispatcher mocks under mocks/.
package household_intranet

import (
	_ "go.uber.org/mock/mockgen"
)
