package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	PresetsDir  string
	TargetsDir  string
	LogLevel    string
	OutputDir   string
	DefaultMode string
	BatchSize   int
	DefaultRows int
	// Today pins the reference date; empty means the current day.
	Today string
}

// Load reads BIZGEN_* settings from the environment. A .env file in the
// working directory fills in variables that are not already set.
func Load() *Config {
	loadDotEnv(".env")

	return &Config{
		PresetsDir:  getEnv("BIZGEN_PRESETS_DIR", "./presets"),
		TargetsDir:  getEnv("BIZGEN_TARGETS_DIR", "./targets"),
		LogLevel:    getEnv("BIZGEN_LOG_LEVEL", "info"),
		OutputDir:   getEnv("BIZGEN_OUTPUT_DIR", "."),
		DefaultMode: getEnv("BIZGEN_DEFAULT_MODE", "create"),
		BatchSize:   getEnvInt("BIZGEN_BATCH_SIZE", 500),
		DefaultRows: getEnvInt("BIZGEN_DEFAULT_ROWS", 20),
		Today:       getEnv("BIZGEN_TODAY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := parseDotEnvLine(sc.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, value)
	}
}

// parseDotEnvLine accepts KEY=VALUE with an optional "export " prefix and
// optional matching quotes around the value.
func parseDotEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') || (value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
