// cmd/tacscope/config.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/tacscope/tacscope/pkg/scope"
)

// loadConfig reads tacscope.cfg.json from configDir after registering
// defaults. A missing file is fine (defaults apply); a malformed one is
// an error.
func loadConfig(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logDir", "")

	viper.SetDefault("display.tickSeconds", 2.0)
	viper.SetDefault("display.aspect", "preserve")
	viper.SetDefault("display.minX", -10.0)
	viper.SetDefault("display.minY", -10.0)
	viper.SetDefault("display.width", 20.0)
	viper.SetDefault("display.height", 20.0)

	viper.SetDefault("ownship.courseDeg", 0.0)
	viper.SetDefault("ownship.speedKn", 10.0)

	viper.SetDefault("target.bearingDeg", 45.0)
	viper.SetDefault("target.rangeNm", 4.242640687119285)

	viper.SetConfigName("tacscope.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %v", err)
		}
	}
	return nil
}

func configuredBounds() scope.WorldBounds {
	return scope.WorldBounds{
		MinX:   viper.GetFloat64("display.minX"),
		MinY:   viper.GetFloat64("display.minY"),
		Width:  viper.GetFloat64("display.width"),
		Height: viper.GetFloat64("display.height"),
	}
}

func configuredAspect() scope.AspectMode {
	if viper.GetString("display.aspect") == "stretch" {
		return scope.Stretch
	}
	return scope.PreserveAspect
}
