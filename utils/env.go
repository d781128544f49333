package utils

import "os"

// GetEnv returns the runtime environment name ("development" when unset).
func GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}
	return env
}

// IsProduction reports whether the server runs in production mode.
func IsProduction() bool {
	return GetEnv() == "production"
}
