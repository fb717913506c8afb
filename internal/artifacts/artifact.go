// Package artifacts reads and writes compiled contract artifacts in the hardhat
// layout: <root>/<sourceName>/<contractName>.json.
package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const Format = "hh-sol-artifact-1"

var (
	ErrUnlinkedLibraries = errors.New("contract bytecode references unlinked libraries")
	ErrNoBytecode        = errors.New("contract has no bytecode (abstract contract or interface)")
)

// LinkReferences maps source name -> library name -> placeholder positions.
type LinkReferences map[string]map[string][]LinkOffset

type LinkOffset struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

type Artifact struct {
	Format                 string          `json:"_format"`
	ContractName           string          `json:"contractName"`
	SourceName             string          `json:"sourceName"`
	Abi                    json.RawMessage `json:"abi"`
	Bytecode               string          `json:"bytecode"`
	DeployedBytecode       string          `json:"deployedBytecode"`
	LinkReferences         LinkReferences  `json:"linkReferences"`
	DeployedLinkReferences LinkReferences  `json:"deployedLinkReferences"`
}

func FullyQualifiedName(sourceName, contractName string) string {
	return sourceName + ":" + contractName
}

// ParseFullyQualifiedName splits "contracts/Foo.sol:Foo". ok is false for bare names.
func ParseFullyQualifiedName(name string) (sourceName string, contractName string, ok bool) {
	idx := strings.LastIndex(name, ":")
	if idx < 0 {
		return "", name, false
	}
	return name[:idx], name[idx+1:], true
}

func (a *Artifact) FullyQualifiedName() string {
	return FullyQualifiedName(a.SourceName, a.ContractName)
}

func (a *Artifact) ABI() (abi.ABI, error) {
	if len(a.Abi) == 0 {
		return abi.ABI{}, nil
	}
	parsed, err := abi.JSON(bytes.NewReader(a.Abi))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI of %s: %w", a.FullyQualifiedName(), err)
	}
	return parsed, nil
}

// UnlinkedLibraries returns fully qualified names of the libraries the creation code still needs.
func (a *Artifact) UnlinkedLibraries() []string {
	var res []string
	for source, libs := range a.LinkReferences {
		for lib := range libs {
			res = append(res, FullyQualifiedName(source, lib))
		}
	}
	sort.Strings(res)
	return res
}

func (a *Artifact) Linked() bool {
	return len(a.LinkReferences) == 0
}

// CreationCode returns the deployable bytecode.
func (a *Artifact) CreationCode() ([]byte, error) {
	if !a.Linked() {
		return nil, fmt.Errorf("%w: %s needs %s",
			ErrUnlinkedLibraries, a.FullyQualifiedName(), strings.Join(a.UnlinkedLibraries(), ", "))
	}
	if a.Bytecode == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoBytecode, a.FullyQualifiedName())
	}
	code, err := hexutil.Decode(a.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode of %s: %w", a.FullyQualifiedName(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBytecode, a.FullyQualifiedName())
	}
	return code, nil
}
