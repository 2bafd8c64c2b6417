package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type CacheCfg struct {
	L1Size     int    `yaml:"l1_size" json:"l1_size"`
	TTLHours   int    `yaml:"ttl_hours" json:"ttl_hours"`
	RedisURL   string `yaml:"redis_url" json:"redis_url"`
	KeyPrefix  string `yaml:"key_prefix" json:"key_prefix"`
}

type BatchCfg struct {
	MaxAddresses  int `yaml:"max_addresses" json:"max_addresses"`
	PerAddressMs  int `yaml:"per_address_ms" json:"per_address_ms"`
	StreamBufSize int `yaml:"stream_buf_size" json:"stream_buf_size"`
}

type ParserCfg struct {
	FuzzyMinScore float64  `yaml:"fuzzy_min_score" json:"fuzzy_min_score"`
	MinConfidence float64  `yaml:"min_confidence" json:"min_confidence"`
	Cache         CacheCfg `yaml:"cache" json:"cache"`
	Batch         BatchCfg `yaml:"batch" json:"batch"`
}

var C ParserCfg

// Load reads the parser configuration from a yaml file and applies env
// overrides. Missing file is not an error for callers that rely on Defaults.
func Load(path string) error {
	Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return err
	}
	applyEnv()
	return nil
}

// Defaults resets C to the built-in configuration.
func Defaults() {
	C = ParserCfg{
		FuzzyMinScore: 0.85,
		MinConfidence: 0.0,
		Cache: CacheCfg{
			L1Size:    10000,
			TTLHours:  24,
			KeyPrefix: "ub_addr:",
		},
		Batch: BatchCfg{
			MaxAddresses:  20000,
			PerAddressMs:  100,
			StreamBufSize: 100,
		},
	}
	applyEnv()
}

func applyEnv() {
	if v := os.Getenv("REDIS_URL"); v != "" {
		C.Cache.RedisURL = v
	}
	if v := os.Getenv("L1_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			C.Cache.L1Size = n
		}
	}
	if v := os.Getenv("FUZZY_MIN_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			C.FuzzyMinScore = f
		}
	}
}

func CacheTTL() time.Duration { return time.Duration(C.Cache.TTLHours) * time.Hour }

func RequestTimeout() time.Duration { return 1500 * time.Millisecond }
