package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ENV struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	Port           string
	AppAuthKey     string
	AppEncKey      string
	ReviewImageDir string
	APP_ENV        string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("No .env file found")
	}

	reviewDir := os.Getenv("REVIEW_IMAGE_DIR")
	if reviewDir == "" {
		reviewDir = "public/images/reviews"
	}

	return ENV{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		Port:           os.Getenv("APP_PORT"),
		AppAuthKey:     os.Getenv("APP_AUTH_KEY"),
		AppEncKey:      os.Getenv("APP_ENC_KEY"),
		ReviewImageDir: reviewDir,
		APP_ENV:        os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
