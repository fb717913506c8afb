// Package cliservice drives a single contract deployment against a host runtime.
package cliservice

import (
	"github.com/chainbattles/deployer/common/logging"
	"github.com/chainbattles/deployer/internal/hre"
	"github.com/rs/zerolog"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type Service struct {
	runtime hre.Runtime
	logger  zerolog.Logger
}

// NewService initializes a new Service with the given runtime
func NewService(rt hre.Runtime) *Service {
	return &Service{
		runtime: rt,
		logger:  logging.NewLogger("cliservice"),
	}
}
