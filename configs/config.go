package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort int
	Env     string
}

func LoadConfig() Config {
	// Muat file .env jika ada
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	appPort, err := strconv.Atoi(os.Getenv("APP_PORT"))
	if err != nil {
		appPort = 5000
	}

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	return Config{
		AppPort: appPort,
		Env:     env,
	}
}
