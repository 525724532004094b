package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config for the whole application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	MySQL     MySQLConfig     `mapstructure:"mysql"`
	Jaeger    JaegerConfig    `mapstructure:"jaeger"`
	Pricing   PricingConfig   `mapstructure:"pricing"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Sync      SyncConfig      `mapstructure:"sync"`
}

// ServerListen ...
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenString for net.Listen
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// String for dialing
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// PricingConfig ...
type PricingConfig struct {
	// Precision is the number of minor-unit digits of the currency
	Precision      int32 `mapstructure:"precision"`
	PriceCacheSize int   `mapstructure:"price_cache_size"`
}

// SchedulerConfig ...
type SchedulerConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// SyncConfig for reloading snapshots from the database
type SyncConfig struct {
	ReloadInterval time.Duration `mapstructure:"reload_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc.host", "localhost")
	v.SetDefault("server.grpc.port", 5000)
	v.SetDefault("server.http.host", "localhost")
	v.SetDefault("server.http.port", 5080)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 5)

	v.SetDefault("pricing.precision", 2)
	v.SetDefault("pricing.price_cache_size", 16*1024*1024)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.sweep_interval", "1m")

	v.SetDefault("sync.reload_interval", "5m")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PROMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func loadConfigFile(v *viper.Viper, file string) Config {
	v.SetConfigFile(file)
	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load config from config.yml in the working directory
func Load() Config {
	return loadConfigFile(newViper(), "config.yml")
}

// LoadTestConfig loads config.test.yml from the root directory of the repository
func LoadTestConfig(rootDir string) Config {
	return loadConfigFile(newViper(), path.Join(rootDir, "config.test.yml"))
}
