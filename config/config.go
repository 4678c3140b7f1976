/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config holds the design-wide timing constants an analysis run
// needs beyond what's in the netlist files themselves: setup/hold margins
// and the top-N truncation count.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the full set of knobs an analysis run can be given. A zero
// Config is never valid on its own; start from DefaultConfig.
type Config struct {
	Tsu   float64 `yaml:"tsu"`
	Thold float64 `yaml:"thold"`
	TopN  int     `yaml:"top_n"`
}

// DefaultConfig returns the sane built-in defaults, overridden in whole or
// in part by an on-disk YAML overlay via ReadConfig.
func DefaultConfig() *Config {
	return &Config{
		Tsu:   1.0,
		Thold: 1.0,
		TopN:  100,
	}
}

// Validate checks the config is sane before it's used to drive analysis.
func (c *Config) Validate() error {
	if c.Tsu < 0 {
		return fmt.Errorf("tsu must be 0 or positive")
	}
	if c.Thold < 0 {
		return fmt.Errorf("thold must be 0 or positive")
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be greater than zero")
	}
	return nil
}

// ReadConfig loads a YAML overlay from path on top of DefaultConfig. A
// field the file doesn't mention keeps its default value.
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
