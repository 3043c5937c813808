package config

import "os"

type AppConfig struct {
	DebugMode      bool
	HTTPConfig     *HTTPConfig
	JudgeConfig    *JudgeConfig
	VerifyConfig   *VerifyConfig
	RunConfig      *RunConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPConfig:     NewHTTPConfig(),
		JudgeConfig:    NewJudgeConfig(),
		VerifyConfig:   NewVerifyConfig(),
		RunConfig:      NewRunConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
	}
}

type HTTPConfig struct {
	Port        int
	ServiceName string
}

func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port:        getIntEnv("HTTP_PORT", 8082),
		ServiceName: getEnv("SERVICE_NAME", "dsa-judge"),
	}
}
