package config

import "os"

type JwtConfig struct {
	Secret    string
	AdminRole string
}

func NewJwtConfig() *JwtConfig {
	return &JwtConfig{
		Secret:    os.Getenv("JWT_SECRET"),
		AdminRole: getEnv("JWT_ADMIN_ROLE", "ADMIN"),
	}
}
