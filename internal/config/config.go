package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory. Variables already set are not overridden.
// It returns the file that was loaded, or "" when none was.
func LoadEnv() string {
	var loaded string
	once.Do(func() {
		loaded = loadEnvFrom(".env", filepath.Join("..", ".env"))
	})
	return loaded
}

func loadEnvFrom(candidates ...string) string {
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return ""
		}
		return envFile
	}
	return ""
}
