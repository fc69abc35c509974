package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is the JSON-file representation of [Config]: it uses JSON
// struct tags and a human-readable duration string instead of the `env`
// tags and time.Duration on the main struct.
type jsonConfig struct {
	Store struct {
		Root string `json:"root"`
	} `json:"store"`
	Session struct {
		TTL string `json:"ttl"`
	} `json:"session"`
	KDF struct {
		TimeCost      uint32 `json:"time_cost"`
		MemoryCostKiB uint32 `json:"memory_cost_kib"`
		Parallelism   uint8  `json:"parallelism"`
	} `json:"kdf"`
	Generator struct {
		Length int `json:"length"`
	} `json:"generator"`
}

// parseJSON reads and decodes the JSON config file at path into a
// [Config]. JSONFilePath is left empty on the result so the path is not
// re-processed on a later merge pass.
func parseJSON(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read json config: %w", err)
	}
	defer f.Close()

	var jc jsonConfig
	if err := json.NewDecoder(f).Decode(&jc); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}

	cfg := &Config{
		Store: Store{Root: jc.Store.Root},
		KDF: KDF{
			TimeCost:      jc.KDF.TimeCost,
			MemoryCostKiB: jc.KDF.MemoryCostKiB,
			Parallelism:   jc.KDF.Parallelism,
		},
		Generator: Generator{Length: jc.Generator.Length},
	}
	if jc.Session.TTL != "" {
		ttl, err := time.ParseDuration(jc.Session.TTL)
		if err != nil {
			return nil, fmt.Errorf("parse session.ttl: %w", err)
		}
		cfg.Session.TTL = ttl
	}
	return cfg, nil
}
