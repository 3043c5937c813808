package config

import (
	"time"
)

// JudgeConfig configures the remote judge client and the result poller.
type JudgeConfig struct {
	BaseURL         string
	AuthToken       string
	RapidAPIKey     string
	RapidAPIHost    string
	RequestTimeout  time.Duration
	StatusBatchSize int
	PollInterval    time.Duration
	MaxWait         time.Duration
}

func NewJudgeConfig() *JudgeConfig {
	return &JudgeConfig{
		BaseURL:         getEnv("JUDGE0_API_URL", "http://localhost:2358"),
		AuthToken:       getEnv("JUDGE0_AUTH_TOKEN", ""),
		RapidAPIKey:     getEnv("JUDGE0_RAPIDAPI_KEY", ""),
		RapidAPIHost:    getEnv("JUDGE0_RAPIDAPI_HOST", ""),
		RequestTimeout:  time.Duration(getIntEnv("JUDGE0_REQUEST_TIMEOUT_SEC", 10)) * time.Second,
		StatusBatchSize: getIntEnv("JUDGE0_STATUS_BATCH_SIZE", 20),
		PollInterval:    time.Duration(getIntEnv("JUDGE_POLL_INTERVAL_MS", 1000)) * time.Millisecond,
		MaxWait:         time.Duration(getIntEnv("JUDGE_MAX_WAIT_SEC", 30)) * time.Second,
	}
}

// VerifyConfig configures reference solution verification.
type VerifyConfig struct {
	// Sequential verifies one language at a time and stops at the first
	// failing language.
	Sequential           bool
	MaxParallelLanguages int
}

func NewVerifyConfig() *VerifyConfig {
	return &VerifyConfig{
		Sequential:           getBoolEnv("VERIFY_SEQUENTIAL", false),
		MaxParallelLanguages: getIntEnv("VERIFY_MAX_PARALLEL_LANGUAGES", 4),
	}
}

// RunConfig configures learner runs.
type RunConfig struct {
	CacheTTL     time.Duration
	MaxTestCases int
}

func NewRunConfig() *RunConfig {
	return &RunConfig{
		CacheTTL:     time.Duration(getIntEnv("RUN_CACHE_TTL_SEC", 600)) * time.Second,
		MaxTestCases: getIntEnv("RUN_MAX_TESTCASES", 20),
	}
}
