package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Local   Local   `json:"local" yaml:"local" mapstructure:"local"`
	Auth    Auth    `json:"auth" yaml:"auth" mapstructure:"auth"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Refresh Refresh `json:"refresh" yaml:"refresh" mapstructure:"refresh"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Local configures the file-backed key-value store that holds the
// anonymous watchlist and the authenticated-mode backup mirror.
type Local struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type Auth struct {
	JWTSecret string        `json:"jwtSecret" yaml:"jwtSecret" mapstructure:"jwtSecret"`
	TokenTTL  time.Duration `json:"tokenTTL" yaml:"tokenTTL" mapstructure:"tokenTTL"`
}

// Refresh houses configuration for the background catalog re-sync job.
type Refresh struct {
	Interval  time.Duration `json:"interval" yaml:"interval" mapstructure:"interval"`
	StaleAge  time.Duration `json:"staleAge" yaml:"staleAge" mapstructure:"staleAge"`
	BatchSize int           `json:"batchSize" yaml:"batchSize" mapstructure:"batchSize"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
