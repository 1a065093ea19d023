package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mandilinkybl-pixel/madirate/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	var envCfg model.EnvConfig
	err := json.Unmarshal([]byte(rawJson), &envCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if envCfg.MongoURI == "" {
		return nil, fmt.Errorf("mongoUri is required")
	}
	if envCfg.MongoDatabase == "" {
		envCfg.MongoDatabase = "mandilink"
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}
