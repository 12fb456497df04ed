package resource

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from the YAML file at path, resolving
// ${ENV} and ${ENV:default} placeholders against the process environment.
func Init(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read properties %s: %w", path, err)
	}

	resolved := viper.New()
	for _, key := range v.AllKeys() {
		value := v.Get(key)
		if s, ok := value.(string); ok {
			value = resolveEnvVariables(s)
		}
		resolved.Set(key, value)
	}

	properties = resolved
	return nil
}

// resolveEnvVariables replaces every placeholder in value; a placeholder whose
// variable is unset and has no default resolves to the empty string.
func resolveEnvVariables(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the property value, or defaultValue when it is empty.
func GetStringOrDefault(key string, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}
