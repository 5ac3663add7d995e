package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/readykit/internal/logging"
	"github.com/mesh-intelligence/readykit/internal/paths"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Config keys.
const (
	cfgKeyBackend       = "backend"
	cfgKeyDataDir       = "data_dir"
	cfgKeyQuotaBytes    = "quota_bytes"
	cfgKeyRedisAddr     = "redis.addr"
	cfgKeyRedisPassword = "redis.password"
	cfgKeyRedisDB       = "redis.db"
	cfgKeyRedisPrefix   = "redis.prefix"
	cfgKeyLogLevel      = "log.level"
	cfgKeyLogFormat     = "log.format"
	cfgKeyChromeBin     = "printer.chrome_bin"
	cfgKeyChromeURL     = "printer.control_url"
)

// envKeys are the config keys that READYKIT_* environment variables may
// override, e.g. READYKIT_REDIS_ADDR. data_dir is resolved separately so
// config.yaml keeps priority over READYKIT_DATA_DIR.
var envKeys = []string{
	cfgKeyBackend, cfgKeyQuotaBytes,
	cfgKeyRedisAddr, cfgKeyRedisPassword, cfgKeyRedisDB, cfgKeyRedisPrefix,
	cfgKeyLogLevel, cfgKeyLogFormat,
	cfgKeyChromeBin, cfgKeyChromeURL,
}

var envReplacer = strings.NewReplacer(".", "_")

// fileConfig is the layout of config.yaml written on first run.
type fileConfig struct {
	Backend    string `yaml:"backend"`
	DataDir    string `yaml:"data_dir,omitempty"`
	QuotaBytes int64  `yaml:"quota_bytes"`
	Log        struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func defaultFileConfig() fileConfig {
	var fc fileConfig
	fc.Backend = types.BackendFile
	fc.QuotaBytes = types.DefaultQuotaBytes
	fc.Log.Level = logging.DefaultLevel
	fc.Log.Format = logging.FormatConsole
	return fc
}

// settings is the resolved configuration for one invocation.
type settings struct {
	Store     types.Config
	LogLevel  string
	LogFormat string
	ChromeBin string
	ChromeURL string
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, paths.ConfigFileName), defaultFileConfig()); err != nil {
		return nil, fmt.Errorf("write default config: %w", err)
	}

	def := defaultFileConfig()
	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyQuotaBytes, def.QuotaBytes)
	v.SetDefault(cfgKeyRedisPrefix, "readykit:")
	v.SetDefault(cfgKeyLogLevel, def.Log.Level)
	v.SetDefault(cfgKeyLogFormat, def.Log.Format)

	v.SetEnvPrefix("READYKIT")
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.SetEnvKeyReplacer(envReplacer)

	v.SetConfigFile(filepath.Join(configDir, paths.ConfigFileName))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates path with cfg unless it already exists.
func writeConfigIfMissing(path string, cfg fileConfig) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# readykit configuration\n# backend: file | sqlite | redis | memory\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

// readSettings resolves the effective configuration. dataDirFlag is the
// --data-dir value.
func readSettings(v *viper.Viper, dataDirFlag string) (settings, error) {
	dataDir, err := paths.ResolveDataDir(dataDirFlag, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}

	s := settings{
		Store: types.Config{
			Backend:    v.GetString(cfgKeyBackend),
			DataDir:    dataDir,
			QuotaBytes: v.GetInt64(cfgKeyQuotaBytes),
			Redis: types.RedisConfig{
				Addr:     v.GetString(cfgKeyRedisAddr),
				Password: v.GetString(cfgKeyRedisPassword),
				DB:       v.GetInt(cfgKeyRedisDB),
				Prefix:   v.GetString(cfgKeyRedisPrefix),
			},
		},
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
		ChromeBin: v.GetString(cfgKeyChromeBin),
		ChromeURL: v.GetString(cfgKeyChromeURL),
	}
	if err := s.Store.Validate(); err != nil {
		return settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}
