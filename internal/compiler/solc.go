package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fabelx/go-solc-select/pkg/config"
	"github.com/fabelx/go-solc-select/pkg/installer"
	"github.com/fabelx/go-solc-select/pkg/versions"
)

// installSolc returns the path of the requested solc release, downloading it if needed.
func installSolc(version string) (string, error) {
	if _, ok := versions.GetInstalled()[version]; !ok {
		if err := installer.InstallSolc(version); err != nil {
			return "", fmt.Errorf("failed to install compiler %s: %w", version, err)
		}
	}
	solc, ok := versions.GetInstalled()[version]
	if !ok {
		return "", fmt.Errorf("%w: version %s", ErrSolcNotFound, version)
	}
	solc = "solc-" + solc

	fileName := filepath.Join(config.SolcArtifacts, solc, solc)
	if _, err := os.Stat(fileName); err != nil {
		return "", fmt.Errorf("%w: version %s: %w", ErrSolcNotFound, version, err)
	}
	return fileName, nil
}
