// Package modkit provides module wiring and core deps
package modkit

import (
	"skypulse/internal/platform/clock"
	"skypulse/internal/platform/config"
	"skypulse/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	Clk clock.Clock
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the clock
func (d Deps) ZeroOK() bool { return true }
