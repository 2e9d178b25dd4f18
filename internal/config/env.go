// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// Path returns the config file path from HUEWHEEL_CONFIG, falling back
// to DefaultPath.
func Path() (string, error) {
	if p := os.Getenv("HUEWHEEL_CONFIG"); p != "" {
		return p, nil
	}
	return DefaultPath()
}
