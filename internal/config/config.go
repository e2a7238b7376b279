package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "FAKE_NEWS_DETECTOR_CONFIG"
	databaseDSNEnv = "DATABASE_DSN"
	modelPathEnv   = "MODEL_PATH"
	listenAddrEnv  = "LISTEN_ADDR"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging        LoggingConfig        `yaml:"logging"`
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	Model          ModelConfig          `yaml:"model"`
	Extraction     ExtractionConfig     `yaml:"extraction"`
	Classification ClassificationConfig `yaml:"classification"`
	Reputation     ReputationConfig     `yaml:"reputation"`
}

// LoggingConfig sets the console log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig describes the optional verdict history store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ModelConfig points at the pre-trained artifact on disk.
type ModelConfig struct {
	Path string `yaml:"path"`
}

// ExtractionConfig tunes the extractor chain.
type ExtractionConfig struct {
	MinWordCount     int    `yaml:"minWordCount"`
	RequestTimeoutMs int    `yaml:"requestTimeoutMs"`
	UserAgent        string `yaml:"userAgent"`
}

// Timeout resolves the request timeout as a duration.
func (e ExtractionConfig) Timeout() time.Duration {
	return time.Duration(e.RequestTimeoutMs) * time.Millisecond
}

// ClassificationConfig tunes the decision policy and the heuristic overlay.
type ClassificationConfig struct {
	ConfidenceThreshold float64  `yaml:"confidenceThreshold"`
	HeuristicConfidence float64  `yaml:"heuristicConfidence"`
	AlarmKeywords       []string `yaml:"alarmKeywords"`
}

// ReputationConfig carries the static domain allow/deny lists.
type ReputationConfig struct {
	Trusted    []string `yaml:"trusted"`
	Suspicious []string `yaml:"suspicious"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(modelPathEnv); v != "" {
		c.Model.Path = v
	}

	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Server.Addr != "" {
		base.Server = override.Server
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Model.Path != "" {
		base.Model = override.Model
	}

	if override.Extraction.MinWordCount > 0 {
		base.Extraction.MinWordCount = override.Extraction.MinWordCount
	}
	if override.Extraction.RequestTimeoutMs > 0 {
		base.Extraction.RequestTimeoutMs = override.Extraction.RequestTimeoutMs
	}
	if override.Extraction.UserAgent != "" {
		base.Extraction.UserAgent = override.Extraction.UserAgent
	}

	if override.Classification.ConfidenceThreshold > 0 {
		base.Classification.ConfidenceThreshold = override.Classification.ConfidenceThreshold
	}
	if override.Classification.HeuristicConfidence > 0 {
		base.Classification.HeuristicConfidence = override.Classification.HeuristicConfidence
	}
	if len(override.Classification.AlarmKeywords) > 0 {
		base.Classification.AlarmKeywords = override.Classification.AlarmKeywords
	}

	if len(override.Reputation.Trusted) > 0 {
		base.Reputation.Trusted = override.Reputation.Trusted
	}
	if len(override.Reputation.Suspicious) > 0 {
		base.Reputation.Suspicious = override.Reputation.Suspicious
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":8080"},
		Model:   ModelConfig{Path: "model.json"},
		Extraction: ExtractionConfig{
			MinWordCount:     50,
			RequestTimeoutMs: 10000,
			UserAgent:        "FakeNewsDetector/1.0",
		},
		Classification: ClassificationConfig{
			ConfidenceThreshold: 0.65,
			HeuristicConfidence: 0.9,
			AlarmKeywords:       []string{"scam", "fake", "fraud", "lie", "hoax", "rant", "wasting"},
		},
		Reputation: ReputationConfig{
			Trusted: []string{
				"bbc.com",
				"reuters.com",
				"apnews.com",
				"nytimes.com",
				"theguardian.com",
				"npr.org",
				"cnn.com",
			},
			Suspicious: []string{
				"beforeitsnews.com",
				"infowars.com",
				"naturalnews.com",
				"worldtruth.tv",
				"realnewsrightnow.com",
			},
		},
	}
}
