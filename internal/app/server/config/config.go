package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string
	Server server
	Redis  redis
	Logger logger
}

type defaultConfig struct {
	RunAddress    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LogLevel      string
	Env           string
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("redis_addr", "localhost:6379")
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("log_level", "info")

	d := defaultConfig{
		RunAddress:    viper.GetString("run_address"),
		RedisAddr:     viper.GetString("redis_addr"),
		RedisPassword: viper.GetString("redis_password"),
		RedisDB:       viper.GetInt("redis_db"),
		LogLevel:      viper.GetString("log_level"),
		Env:           viper.GetString("app_env"),
	}

	config := Config{
		Env: d.Env,
		Redis: redis{
			Addr:     d.RedisAddr,
			Password: d.RedisPassword,
			DB:       d.RedisDB,
		},
		Server: server{RunAddress: d.RunAddress},
		Logger: logger{LogLevel: d.LogLevel},
	}

	return &config
}
