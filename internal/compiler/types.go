package compiler

import (
	"encoding/json"

	"github.com/chainbattles/deployer/internal/artifacts"
)

// Input is the solc standard JSON input.
type Input struct {
	Language string            `json:"language"`
	Sources  map[string]Source `json:"sources"`
	Settings Settings          `json:"settings"`
}

type Source struct {
	Content string   `json:"content,omitempty"`
	Urls    []string `json:"urls,omitempty"`
}

type Settings struct {
	Optimizer       Optimizer                      `json:"optimizer"`
	EvmVersion      string                         `json:"evmVersion,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

type Optimizer struct {
	Enabled bool `json:"enabled"`
	Runs    int  `json:"runs"`
}

// Output is the subset of the solc standard JSON output the artifacts are built from.
type Output struct {
	Errors    []OutputError                        `json:"errors,omitempty"`
	Contracts map[string]map[string]OutputContract `json:"contracts,omitempty"`
}

type OutputError struct {
	Severity         string `json:"severity"`
	Type             string `json:"type"`
	Component        string `json:"component"`
	Message          string `json:"message"`
	FormattedMessage string `json:"formattedMessage"`
	SourceLocation   *struct {
		File  string `json:"file"`
		Start int    `json:"start"`
		End   int    `json:"end"`
	} `json:"sourceLocation,omitempty"`
}

type OutputContract struct {
	Abi json.RawMessage `json:"abi"`
	Evm struct {
		Bytecode         Bytecode `json:"bytecode"`
		DeployedBytecode Bytecode `json:"deployedBytecode"`
	} `json:"evm"`
}

type Bytecode struct {
	Object         string                   `json:"object"`
	LinkReferences artifacts.LinkReferences `json:"linkReferences,omitempty"`
}

var outputSelection = map[string]map[string][]string{
	"*": {
		"*": {
			"abi",
			"evm.bytecode.object",
			"evm.bytecode.linkReferences",
			"evm.deployedBytecode.object",
			"evm.deployedBytecode.linkReferences",
		},
	},
}
