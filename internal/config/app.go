package config

import "os"

func Port() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return port
	}
	return ":8080"
}

func LogDir() string {
	return os.Getenv("APP_LOG_DIR")
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
