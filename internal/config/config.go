package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything main needs to boot the API. JWTSecret is handed
// to the token manager at construction; nothing reads it from the
// environment after startup.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TextbeltKey   string
	CORSOrigins   []string
}

func Load() *Config {
	viper.AutomaticEnv()
	viper.SetDefault("API_PORT", "8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "clinic")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173")

	return &Config{
		Port:          viper.GetString("API_PORT"),
		MongoURI:      viper.GetString("MONGO_URI"),
		MongoDatabase: viper.GetString("MONGO_DATABASE"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		TextbeltKey:   viper.GetString("TEXTBELT_API_KEY"),
		CORSOrigins:   strings.Split(viper.GetString("CORS_ORIGINS"), ","),
	}
}
