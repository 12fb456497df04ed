package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	PropertiesPath  string
	MessagesPath    string
}

var Env *EnvConfig

func init() {
	// A missing .env is the normal case outside local development.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "go-weather"),
		PropertiesPath:  getStringOrDefault(env, "PROPERTIES_PATH", "configs/application.yml"),
		MessagesPath:    getStringOrDefault(env, "MESSAGES_PATH", "configs/messages.yml"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
