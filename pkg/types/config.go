package types

import "errors"

// Config selects and parameterizes the Store backend.
type Config struct {
	Backend    string      `json:"backend" yaml:"backend"`
	DataDir    string      `json:"data_dir" yaml:"data_dir"`
	QuotaBytes int64       `json:"quota_bytes" yaml:"quota_bytes"`
	Redis      RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// DefaultQuotaBytes mirrors the 5 MiB browser local storage limit.
const DefaultQuotaBytes int64 = 5 * 1024 * 1024

// QuotaWarningBytes is the usage at which the user is told to export a backup.
const QuotaWarningBytes int64 = 4608 * 1024

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrQuotaInvalid   = errors.New("quota must not be negative")
	ErrRedisAddrEmpty = errors.New("redis backend requires an address")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendRedis:  true,
	BackendMemory: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.QuotaBytes < 0 {
		return ErrQuotaInvalid
	}
	if c.Backend == BackendRedis && c.Redis.Addr == "" {
		return ErrRedisAddrEmpty
	}
	return nil
}
