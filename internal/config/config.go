package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded by LoadEnv when no file is named.
const DefaultEnvFile = ".env"

// LoadEnv loads environment variables from .env files. Variables already set in
// the environment win. Files that do not exist are skipped; the paths that were
// loaded are returned.
func LoadEnv(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	var loaded []string
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("error checking %s: %w", file, err)
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("error loading %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}
