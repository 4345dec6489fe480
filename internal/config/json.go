package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON and YAML tags.
type StructuredJSONConfig struct {
	App struct {
		Cipher       string `json:"cipher" yaml:"cipher"`
		KeySalt      string `json:"key_salt" yaml:"key_salt"`
		ArgonTime    uint32 `json:"argon_time" yaml:"argon_time"`
		ArgonMemory  uint32 `json:"argon_memory" yaml:"argon_memory"`
		ArgonThreads uint8  `json:"argon_threads" yaml:"argon_threads"`
		LogLevel     string `json:"log_level" yaml:"log_level"`
		LogFile      string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Files struct {
			DocumentsDir string `json:"documents_dir" yaml:"documents_dir"`
		} `json:"files,omitempty" yaml:"files,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}

func (jsonCfg StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Cipher:       jsonCfg.App.Cipher,
			KeySalt:      jsonCfg.App.KeySalt,
			ArgonTime:    jsonCfg.App.ArgonTime,
			ArgonMemory:  jsonCfg.App.ArgonMemory,
			ArgonThreads: jsonCfg.App.ArgonThreads,
			LogLevel:     jsonCfg.App.LogLevel,
			LogFile:      jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				DocumentsDir: jsonCfg.Storage.Files.DocumentsDir,
			},
		},
	}
}
