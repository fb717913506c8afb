package common

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/chainbattles/deployer/common/check"
	"github.com/chainbattles/deployer/internal/compiler"
	"github.com/chainbattles/deployer/internal/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	RPCEndpoint   string            `mapstructure:"rpc_endpoint"`
	PrivateKey    *ecdsa.PrivateKey `mapstructure:"private_key"`
	Contract      string            `mapstructure:"contract"`
	ArtifactsDir  string            `mapstructure:"artifacts_dir"`
	SourcesDir    string            `mapstructure:"sources_dir"`
	SolcVersion   string            `mapstructure:"solc_version"`
	SolcPath      string            `mapstructure:"solc_path"`
	Optimizer     bool              `mapstructure:"optimizer"`
	OptimizerRuns int               `mapstructure:"optimizer_runs"`
	GasLimit      types.Gas         `mapstructure:"gas_limit"`
	GasPrice      types.Value       `mapstructure:"gas_price"`
}

const (
	Section = "deployer"

	RPCEndpointField   = "rpc_endpoint"
	PrivateKeyField    = "private_key"
	ContractField      = "contract"
	ArtifactsDirField  = "artifacts_dir"
	SourcesDirField    = "sources_dir"
	SolcVersionField   = "solc_version"
	SolcPathField      = "solc_path"
	OptimizerField     = "optimizer"
	OptimizerRunsField = "optimizer_runs"
	GasLimitField      = "gas_limit"
	GasPriceField      = "gas_price"

	EnvPrefix = "DEPLOYER"
)

const (
	DefaultRPCEndpoint  = "http://127.0.0.1:8545"
	DefaultContract     = "ChainBattles"
	DefaultArtifactsDir = "artifacts"
	DefaultSourcesDir   = "contracts"
)

// SupportedOptions lists the keys of the [deployer] section.
var SupportedOptions = []string{
	RPCEndpointField,
	PrivateKeyField,
	ContractField,
	ArtifactsDirField,
	SourcesDirField,
	SolcVersionField,
	SolcPathField,
	OptimizerField,
	OptimizerRunsField,
	GasLimitField,
	GasPriceField,
}

const InitConfigTemplate = `; Configuration of the contract deployer
[deployer]

; JSON-RPC endpoint of the node to deploy to.
; rpc_endpoint = "http://127.0.0.1:8545"

; Hex-encoded private key of the deploying account.
; private_key = "WRITE_YOUR_PRIVATE_KEY_HERE"

; Contract to deploy: a bare name or "contracts/File.sol:Name".
; contract = "ChainBattles"

; Project layout, relative to the working directory.
; artifacts_dir = "artifacts"
; sources_dir = "contracts"

; Compiler. solc_path takes precedence over solc_version.
; solc_version = "0.8.10"
; solc_path = "/usr/local/bin/solc"
; optimizer = false
; optimizer_runs = 200

; Gas overrides. Zero means estimate.
; gas_limit = 0
; gas_price = 0
`

var DefaultConfigPath string

func init() {
	homeDir, err := os.UserHomeDir()
	check.PanicIfErr(err)

	DefaultConfigPath = filepath.Join(homeDir, ".config/deployer/config.ini")
}

// Key is the viper key of a field of the [deployer] section.
func Key(field string) string {
	return Section + "." + field
}

// SetConfigFile sets the config file, defaults and environment bindings of v.
func SetConfigFile(v *viper.Viper, cfgFile string) {
	if cfgFile == "" {
		cfgFile = DefaultConfigPath
	}
	v.SetConfigType("ini")
	v.SetConfigFile(cfgFile)

	v.SetDefault(Key(RPCEndpointField), DefaultRPCEndpoint)
	v.SetDefault(Key(ContractField), DefaultContract)
	v.SetDefault(Key(ArtifactsDirField), DefaultArtifactsDir)
	v.SetDefault(Key(SourcesDirField), DefaultSourcesDir)
	v.SetDefault(Key(SolcVersionField), compiler.DefaultSolcVersion)
	v.SetDefault(Key(OptimizerRunsField), compiler.DefaultOptimizerRuns)

	for _, field := range SupportedOptions {
		check.PanicIfErr(v.BindEnv(Key(field), EnvPrefix+"_"+strings.ToUpper(field)))
	}
}

func InitDefaultConfig(configPath string) (string, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	dirPath := filepath.Dir(configPath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(InitConfigTemplate); err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return configPath, nil
}

// PatchConfig rewrites the given keys in the config file used by v, keeping
// every other line. Keys not present yet are appended.
func PatchConfig(v *viper.Viper, delta map[string]any) error {
	configPath := v.ConfigFileUsed()
	check.PanicIfNotf(configPath != "", "config file is not set")

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			configPath, err = InitDefaultConfig(configPath)
		}
		if err != nil {
			return err
		}
	}

	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	result := strings.Builder{}
	for i, line := range strings.Split(string(cfg), "\n") {
		if i > 0 {
			result.WriteByte('\n')
		}
		key := strings.TrimSpace(strings.Split(line, "=")[0])
		if value, ok := delta[key]; ok {
			result.WriteString(fmt.Sprintf("%s = %v", key, value))
			delete(delta, key)
		} else {
			result.WriteString(line)
		}
	}
	for key, value := range delta {
		result.WriteString(fmt.Sprintf("%s = %v\n", key, value))
	}
	return os.WriteFile(configPath, []byte(result.String()), 0o600)
}

// ReadConfig reads the config file of v. A missing file is created from the template.
func ReadConfig(v *viper.Viper) (created bool, err error) {
	err = v.ReadInConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) || errors.Is(err, fs.ErrNotExist) {
		if _, err := InitDefaultConfig(v.ConfigFileUsed()); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return false, nil
}

// DecodeConfig decodes the [deployer] section merged with defaults, environment and bound flags.
func DecodeConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decodePrivateKey,
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return nil, err
	}

	section, _ := v.AllSettings()[Section].(map[string]any)
	if err := decoder.Decode(section); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func ParsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

func decodePrivateKey(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(&ecdsa.PrivateKey{}) {
		s, _ := data.(string)
		if s == "" {
			return (*ecdsa.PrivateKey)(nil), nil
		}
		return ParsePrivateKey(s)
	}
	return data, nil
}
