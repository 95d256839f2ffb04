package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	StaticDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// SeedConfig controls optional startup seeding of an empty seats
// table: one seat per row letter x column number.
type SeedConfig struct {
	OnStart bool
	Rows    string
	Columns int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "seat-board")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STATIC_DIR", "web")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SEED_ON_START", false)
	viper.SetDefault("SEED_ROWS", "ABCDE")
	viper.SetDefault("SEED_COLS", 10)

	// .env is optional; real env vars alone are enough in containers
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Port:      viper.GetString("PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
			StaticDir: viper.GetString("STATIC_DIR"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Seed: SeedConfig{
			OnStart: viper.GetBool("SEED_ON_START"),
			Rows:    viper.GetString("SEED_ROWS"),
			Columns: viper.GetInt("SEED_COLS"),
		},
	}

	return config, nil
}
