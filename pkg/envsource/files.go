package envsource

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Dotenv loads one or more .env files. With no paths it reads ./.env.
// Keys in later files override earlier ones.
func Dotenv(paths ...string) (Source, error) {
	m, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("envsource: read dotenv: %w", err)
	}
	return Map(m), nil
}

// TOMLFile loads a flat TOML table of variable names to scalar values:
//
//	KAFKA_URL = "kafka+ssl://broker-1:9096"
//	KAFKA_TRUSTED_CERT = """
//	-----BEGIN CERTIFICATE-----
//	...
//	"""
func TOMLFile(path string) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("envsource: read %s: %w", path, err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("envsource: parse %s: %w", path, err)
	}
	out := make(Map, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case string:
			out[k] = x
		case int64:
			out[k] = strconv.FormatInt(x, 10)
		case float64:
			out[k] = strconv.FormatFloat(x, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(x)
		default:
			return nil, fmt.Errorf("envsource: %s: key %q is not a scalar value", path, k)
		}
	}
	return out, nil
}
