// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/pingen/pkg/types"
)

const (
	defaultInput         = "pins.xlsx"
	defaultSheet         = 3
	defaultMappingsFile  = "initializePinNameMappings.cpp"
	defaultFunctionsFile = "initializePinFunctions.cpp"
)

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// generateConfig resolves the pipeline settings from flags, environment, and
// the config file, in viper's precedence order.
func generateConfig() (types.GenerateConfig, error) {
	var cfg types.GenerateConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Input == "" {
		cfg.Input = defaultInput
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Output.Mappings == "" {
		cfg.Output.Mappings = defaultMappingsFile
	}
	if cfg.Output.Functions == "" {
		cfg.Output.Functions = defaultFunctionsFile
	}
	return cfg, nil
}

func storeConfig() types.StoreConfig {
	return types.StoreConfig{Path: viper.GetString("db.path")}
}
