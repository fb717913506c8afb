package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chainbattles/deployer/common/logging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

const (
	buildInfoDir    = "build-info"
	debugFileExt    = ".dbg.json"
	artifactExt     = ".json"
	cacheSize       = 64
	artifactPerm    = 0o644
	artifactDirPerm = 0o755
)

var (
	ErrArtifactNotFound  = errors.New("artifact not found")
	ErrAmbiguousArtifact = errors.New("multiple artifacts match the contract name")
)

// Store resolves contract names to artifacts below a root directory.
type Store struct {
	root   string
	cache  *lru.Cache[string, *Artifact]
	logger zerolog.Logger
}

func NewStore(root string) (*Store, error) {
	cache, err := lru.New[string, *Artifact](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{
		root:   root,
		cache:  cache,
		logger: logging.NewLogger("artifacts"),
	}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Path returns the canonical location of an artifact.
func (s *Store) Path(sourceName, contractName string) string {
	return filepath.Join(s.root, filepath.FromSlash(sourceName), contractName+artifactExt)
}

// Lookup accepts a bare contract name or a fully qualified "source:Contract" name.
func (s *Store) Lookup(name string) (*Artifact, error) {
	if sourceName, contractName, ok := ParseFullyQualifiedName(name); ok {
		a, err := s.load(s.Path(sourceName, contractName))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, s.root)
		}
		return a, err
	}

	candidates, err := s.find(name)
	if err != nil {
		return nil, err
	}
	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: %s in %s (are the contracts compiled?)", ErrArtifactNotFound, name, s.root)
	case 1:
		return s.load(candidates[0])
	default:
		fqns := make([]string, 0, len(candidates))
		for _, path := range candidates {
			fqns = append(fqns, s.fullyQualifiedNameOf(path))
		}
		return nil, fmt.Errorf("%w %q, use one of: %s", ErrAmbiguousArtifact, name, strings.Join(fqns, ", "))
	}
}

// FullyQualifiedNames lists every artifact below the root.
func (s *Store) FullyQualifiedNames() ([]string, error) {
	paths, err := s.find("")
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(paths))
	for _, path := range paths {
		res = append(res, s.fullyQualifiedNameOf(path))
	}
	sort.Strings(res)
	return res, nil
}

// Write stores the artifact at its canonical path and returns that path.
func (s *Store) Write(a *Artifact) (string, error) {
	if a.Format == "" {
		a.Format = Format
	}
	path := s.Path(a.SourceName, a.ContractName)
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode artifact %s: %w", a.FullyQualifiedName(), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), artifactDirPerm); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(path, data, artifactPerm); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	s.cache.Remove(path)
	return path, nil
}

// find returns artifact paths whose contract name is name, or all of them if name is empty.
func (s *Store) find(name string) ([]string, error) {
	var res []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.root && d.Name() == buildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		base := d.Name()
		if !strings.HasSuffix(base, artifactExt) || strings.HasSuffix(base, debugFileExt) {
			return nil
		}
		if name == "" || base == name+artifactExt {
			res = append(res, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan artifacts in %s: %w", s.root, err)
	}
	sort.Strings(res)
	return res, nil
}

func (s *Store) load(path string) (*Artifact, error) {
	if a, ok := s.cache.Get(path); ok {
		return a, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}
	if a.ContractName == "" {
		a.ContractName = strings.TrimSuffix(filepath.Base(path), artifactExt)
	}
	if a.SourceName == "" {
		a.SourceName = s.sourceNameOf(path)
	}

	s.logger.Debug().
		Str(logging.FieldArtifactPath, path).
		Str(logging.FieldContractName, a.FullyQualifiedName()).
		Msg("Artifact loaded")
	s.cache.Add(path, &a)
	return &a, nil
}

func (s *Store) sourceNameOf(path string) string {
	rel, err := filepath.Rel(s.root, filepath.Dir(path))
	if err != nil {
		return filepath.ToSlash(filepath.Dir(path))
	}
	return filepath.ToSlash(rel)
}

func (s *Store) fullyQualifiedNameOf(path string) string {
	return FullyQualifiedName(s.sourceNameOf(path), strings.TrimSuffix(filepath.Base(path), artifactExt))
}
