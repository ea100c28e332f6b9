package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPath = ".env"

type Config struct {
	ServerAddress string
	EnableTLS     bool
	Env           string
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("server_address", "localhost:8080")
	viper.SetDefault("app_env", "prod")

	return &Config{
		ServerAddress: viper.GetString("server_address"),
		EnableTLS:     viper.GetBool("enable_tls"),
		Env:           viper.GetString("app_env"),
	}
}
