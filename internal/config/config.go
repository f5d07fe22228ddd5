package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/neluchetraru/prop-track/internal/utils"
)

const AppName = "property-service"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Database
	DBUrl string

	// CORS
	CORSAllowedOrigin string

	// Auth: the session provider signs access tokens with its RSA key;
	// this service only ever needs the public half.
	RSAPublicKey *rsa.PublicKey
}

func LoadConfig() *Config {
	// .env is optional; real deployments inject env vars directly.
	_ = godotenv.Load()

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}
	corsOrigin := os.Getenv("CORS_ALLOWED_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = appUrl
	}

	publicKeyB64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if publicKeyB64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64: ", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		utils.Logger.Fatal("Failed to parse RSA public key PEM: ", err)
	}

	return &Config{
		AppName:           AppName,
		AppPort:           appPort,
		AppUrl:            appUrl,
		DBUrl:             dbUrl,
		CORSAllowedOrigin: corsOrigin,
		RSAPublicKey:      publicKey,
	}
}
