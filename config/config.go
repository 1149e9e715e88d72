package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cpu-scheduler-simulator/internal/requests"
)

type SchedulerConfig struct {
	Port            int
	LogLevel        string
	LogFormat       string
	AllowedOrigins  string
	MaxProcesses    int
	MaxTotalBurst   int
	MaxArrivalTime  int
	CacheEnabled    bool
	CacheMaxEntries int64
}

func (c *SchedulerConfig) Limits() requests.Limits {
	return requests.Limits{
		MaxProcesses:   c.MaxProcesses,
		MaxTotalBurst:  c.MaxTotalBurst,
		MaxArrivalTime: c.MaxArrivalTime,
	}
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml once per process.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = LoadSchedulerConfig("")
	})

	return config, configErr
}

// LoadSchedulerConfig reads configuration from an optional .env file, the given yaml
// file (or ./config.yaml when path is empty) and SCHEDULER_* environment variables.
// A missing ./config.yaml is not an error; a missing explicit path is.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("port", 5000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.allowed_origins", "*")
	v.SetDefault("scheduler.max_processes", 1000)
	v.SetDefault("scheduler.max_total_burst", 1000000)
	v.SetDefault("scheduler.max_arrival_time", 1000000)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_entries", 10000)

	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &SchedulerConfig{
		Port:            v.GetInt("port"),
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		AllowedOrigins:  v.GetString("server.allowed_origins"),
		MaxProcesses:    v.GetInt("scheduler.max_processes"),
		MaxTotalBurst:   v.GetInt("scheduler.max_total_burst"),
		MaxArrivalTime:  v.GetInt("scheduler.max_arrival_time"),
		CacheEnabled:    v.GetBool("cache.enabled"),
		CacheMaxEntries: v.GetInt64("cache.max_entries"),
	}, nil
}
