package sandwich

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrReadConfigurationFailure = errors.New("failed to read configuration")
	ErrLoadConfigurationFailure = errors.New("failed to load configuration")
)

const environmentPrefix = "SANDWICH_"

type Configuration struct {
	Logging  LoggingConfiguration  `yaml:"logging"`
	Consumer ConsumerConfiguration `yaml:"consumer"`

	Prometheus struct {
		Address string `yaml:"address"`
	} `yaml:"prometheus"`

	Dispatch struct {
		// Events that the client should not handle.
		EventBlacklist []string `yaml:"event_blacklist"`
	} `yaml:"dispatch"`
}

type LoggingConfiguration struct {
	Level              string `yaml:"level"`
	FileLoggingEnabled bool   `yaml:"file_logging_enabled"`

	EncodeAsJSON bool `yaml:"encode_as_json"`

	Directory  string `yaml:"directory"`
	Filename   string `yaml:"filename"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

type ConsumerConfiguration struct {
	// Type is the name of the message queue, such as nats or kafka.
	Type string `yaml:"type"`

	// Channel is the channel the daemon produces to.
	Channel string `yaml:"channel"`

	// This is the client name that is passed to consumers.
	ClientName          string `yaml:"client_name"`
	IncludeRandomSuffix bool   `yaml:"client_name_uses_random_suffix"`

	Arguments map[string]any `yaml:"arguments"`
}

// LoadConfiguration loads the configuration file at path. A .env file in the
// working directory is loaded first and SANDWICH_ prefixed environment
// variables override values from the file.
func LoadConfiguration(path string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfigurationFailure, err)
	}

	return ParseConfiguration(file, os.LookupEnv)
}

// ParseConfiguration parses a yaml configuration and applies overrides from lookup.
func ParseConfiguration(data []byte, lookup func(key string) (string, bool)) (*Configuration, error) {
	configuration := &Configuration{}

	if err := yaml.Unmarshal(data, configuration); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfigurationFailure, err)
	}

	configuration.applyEnvironment(lookup)

	if configuration.Consumer.Type == "" {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfigurationFailure, ErrMissingConsumer)
	}

	if configuration.Consumer.ClientName == "" {
		configuration.Consumer.ClientName = "sandwich-interactions"
	}

	if configuration.Consumer.IncludeRandomSuffix {
		configuration.Consumer.ClientName += "-" + randomHex(4)
	}

	if configuration.Logging.Level == "" {
		configuration.Logging.Level = "info"
	}

	return configuration, nil
}

func (c *Configuration) applyEnvironment(lookup func(key string) (string, bool)) {
	if lookup == nil {
		return
	}

	if value, ok := lookup(environmentPrefix + "MQ_TYPE"); ok {
		c.Consumer.Type = value
	}

	if value, ok := lookup(environmentPrefix + "MQ_ADDRESS"); ok {
		if c.Consumer.Arguments == nil {
			c.Consumer.Arguments = make(map[string]any)
		}

		for key := range c.Consumer.Arguments {
			if strings.EqualFold(key, "address") {
				delete(c.Consumer.Arguments, key)
			}
		}

		c.Consumer.Arguments["Address"] = value
	}

	if value, ok := lookup(environmentPrefix + "MQ_CHANNEL"); ok {
		c.Consumer.Channel = value
	}

	if value, ok := lookup(environmentPrefix + "LOG_LEVEL"); ok {
		c.Logging.Level = value
	}

	if value, ok := lookup(environmentPrefix + "PROMETHEUS_ADDRESS"); ok {
		c.Prometheus.Address = value
	}
}
