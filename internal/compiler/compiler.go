// Package compiler turns the Solidity sources of a project into artifacts by
// running solc in standard JSON mode.
package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chainbattles/deployer/common/logging"
	"github.com/chainbattles/deployer/internal/artifacts"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultSolcVersion   = "0.8.10"
	DefaultOptimizerRuns = 200

	sourceExt        = ".sol"
	includeDir       = "node_modules"
	writeConcurrency = 8
)

var (
	ErrCompilationFailed = errors.New("compilation failed")
	ErrSolcNotFound      = errors.New("solc compiler not found")
)

type Config struct {
	// Root is the project root. Source names are paths relative to it.
	Root          string
	SourcesDir    string
	SolcVersion   string
	SolcPath      string
	Optimize      bool
	OptimizerRuns int
}

type Result struct {
	Sources   []string
	Artifacts []string
}

type runFunc func(ctx context.Context, solc string, args []string, input []byte) ([]byte, error)

type Compiler struct {
	cfg     Config
	store   *artifacts.Store
	run     runFunc
	install func(version string) (string, error)
	logger  zerolog.Logger
}

func New(cfg Config, store *artifacts.Store) *Compiler {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if root, err := filepath.Abs(cfg.Root); err == nil {
		cfg.Root = root
	}
	if cfg.SolcVersion == "" {
		cfg.SolcVersion = DefaultSolcVersion
	}
	if cfg.OptimizerRuns == 0 {
		cfg.OptimizerRuns = DefaultOptimizerRuns
	}
	return &Compiler{
		cfg:     cfg,
		store:   store,
		run:     runSolc,
		install: installSolc,
		logger:  logging.NewLogger("compiler"),
	}
}

// Compile compiles every source below the sources directory. A missing
// sources directory means there is nothing to compile.
func (c *Compiler) Compile(ctx context.Context) (*Result, error) {
	start := time.Now()
	sources, err := c.collectSources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		c.logger.Debug().Msgf("No sources found in %s", c.sourcesDir())
		return &Result{}, nil
	}

	input, err := c.buildInput(sources)
	if err != nil {
		return nil, err
	}
	inputJson, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compiler input: %w", err)
	}

	solc, err := c.findSolc()
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Str(logging.FieldSolcPath, solc).
		Int("sources", len(sources)).
		Msg("Compiling...")

	outputJson, err := c.run(ctx, solc, c.solcArgs(), inputJson)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompilationFailed, err)
	}

	var output Output
	if err := json.Unmarshal(outputJson, &output); err != nil {
		return nil, fmt.Errorf("failed to unmarshal compiler output: %w", err)
	}
	if err := c.checkErrors(output.Errors); err != nil {
		return nil, err
	}

	written, err := c.writeArtifacts(ctx, toArtifacts(&output))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.name
	}
	c.logger.Info().
		Int("artifacts", len(written)).
		Dur(logging.FieldDuration, time.Since(start)).
		Msg("Compilation finished")
	return &Result{Sources: names, Artifacts: written}, nil
}

func (c *Compiler) sourcesDir() string {
	if filepath.IsAbs(c.cfg.SourcesDir) {
		return c.cfg.SourcesDir
	}
	return filepath.Join(c.cfg.Root, c.cfg.SourcesDir)
}

type sourceFile struct {
	// name is the solc source unit name, also used as the artifact source name.
	name string
	path string
}

// collectSources returns the sources sorted by name. Names are slash separated
// and relative to the root, or to the parent of the sources directory when it
// lies outside the root.
func (c *Compiler) collectSources() ([]sourceFile, error) {
	dir := c.sourcesDir()
	base := c.cfg.Root
	if rel, err := filepath.Rel(base, dir); err != nil || !filepath.IsLocal(rel) {
		base = filepath.Dir(dir)
	}

	var sources []sourceFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != sourceExt {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		sources = append(sources, sourceFile{name: filepath.ToSlash(rel), path: path})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect sources: %w", err)
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].name < sources[j].name
	})
	return sources, nil
}

func (c *Compiler) buildInput(sources []sourceFile) (*Input, error) {
	input := &Input{
		Language: "Solidity",
		Sources:  make(map[string]Source, len(sources)),
		Settings: Settings{
			Optimizer: Optimizer{
				Enabled: c.cfg.Optimize,
				Runs:    c.cfg.OptimizerRuns,
			},
			OutputSelection: outputSelection,
		},
	}
	for _, src := range sources {
		content, err := os.ReadFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", src.path, err)
		}
		input.Sources[src.name] = Source{Content: string(content)}
	}
	return input, nil
}

// solcArgs lets solc resolve imports from the project root and node_modules.
func (c *Compiler) solcArgs() []string {
	args := []string{"--standard-json", "--base-path", c.cfg.Root, "--allow-paths", c.cfg.Root}
	include := filepath.Join(c.cfg.Root, includeDir)
	if info, err := os.Stat(include); err == nil && info.IsDir() {
		args = append(args, "--include-path", include)
	}
	return args
}

func (c *Compiler) findSolc() (string, error) {
	if c.cfg.SolcPath != "" {
		path, err := exec.LookPath(c.cfg.SolcPath)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrSolcNotFound, err)
		}
		return path, nil
	}
	c.logger.Debug().Str(logging.FieldSolcVersion, c.cfg.SolcVersion).Msg("Resolving solc release")
	return c.install(c.cfg.SolcVersion)
}

func (c *Compiler) checkErrors(outputErrors []OutputError) error {
	var failures []string
	for _, e := range outputErrors {
		msg := e.FormattedMessage
		if msg == "" {
			msg = e.Message
		}
		if e.Severity == "error" {
			failures = append(failures, msg)
			continue
		}
		event := c.logger.Warn().Str("type", e.Type)
		if e.SourceLocation != nil {
			event = event.Str(logging.FieldSourceName, e.SourceLocation.File)
		}
		event.Msg(strings.TrimSpace(msg))
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w:\n%s", ErrCompilationFailed, strings.Join(failures, "\n"))
	}
	return nil
}

func toArtifacts(output *Output) []*artifacts.Artifact {
	var res []*artifacts.Artifact
	for sourceName, contracts := range output.Contracts {
		for contractName, contract := range contracts {
			res = append(res, &artifacts.Artifact{
				Format:                 artifacts.Format,
				ContractName:           contractName,
				SourceName:             sourceName,
				Abi:                    orEmptyAbi(contract.Abi),
				Bytecode:               "0x" + contract.Evm.Bytecode.Object,
				DeployedBytecode:       "0x" + contract.Evm.DeployedBytecode.Object,
				LinkReferences:         orEmptyRefs(contract.Evm.Bytecode.LinkReferences),
				DeployedLinkReferences: orEmptyRefs(contract.Evm.DeployedBytecode.LinkReferences),
			})
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].FullyQualifiedName() < res[j].FullyQualifiedName()
	})
	return res
}

func orEmptyAbi(abi json.RawMessage) json.RawMessage {
	if len(abi) == 0 {
		return json.RawMessage("[]")
	}
	return abi
}

func orEmptyRefs(refs artifacts.LinkReferences) artifacts.LinkReferences {
	if refs == nil {
		return artifacts.LinkReferences{}
	}
	return refs
}

func (c *Compiler) writeArtifacts(ctx context.Context, arts []*artifacts.Artifact) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(writeConcurrency)
	for _, a := range arts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := c.store.Write(a)
			if err != nil {
				return err
			}
			c.logger.Debug().
				Str(logging.FieldContractName, a.FullyQualifiedName()).
				Str(logging.FieldArtifactPath, path).
				Msg("Artifact written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(arts))
	for _, a := range arts {
		names = append(names, a.FullyQualifiedName())
	}
	return names, nil
}

func runSolc(ctx context.Context, solc string, args []string, input []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, solc, args...)
	cmd.Stdin = bytes.NewReader(input)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("failed to execute `%s`: %w\n%s", cmd, err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("failed to execute `%s`: %w", cmd, err)
	}
	return output, nil
}
