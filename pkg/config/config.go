package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	GitHub   GitHubConfig
	Insights InsightsConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type GitHubConfig struct {
	APIBaseURL string
	Token      string
}

type InsightsConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

// AnalysisConfig bounds a single analysis run. Timeouts are in seconds,
// page limits are a hard ceiling per paginated source.
type AnalysisConfig struct {
	GlobalBudget   int
	FetchTimeout   int
	SearchTimeout  int
	EventPageLimit int
	RepoPageLimit  int
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 60),
		},
		GitHub: GitHubConfig{
			APIBaseURL: getEnv("GITHUB_API_URL", "https://api.github.com"),
			Token:      getEnv("GITHUB_TOKEN", ""),
		},
		Insights: InsightsConfig{
			Endpoint: getEnv("INSIGHTS_API_URL", ""),
			APIKey:   getEnv("INSIGHTS_API_KEY", ""),
			Model:    getEnv("INSIGHTS_MODEL", "gemini-3-flash-preview"),
		},
		Analysis: AnalysisConfig{
			GlobalBudget:   getEnvAsInt("ANALYSIS_BUDGET_SECONDS", 45),
			FetchTimeout:   getEnvAsInt("FETCH_TIMEOUT_SECONDS", 10),
			SearchTimeout:  getEnvAsInt("SEARCH_TIMEOUT_SECONDS", 4),
			EventPageLimit: getEnvAsInt("EVENT_PAGE_LIMIT", 10),
			RepoPageLimit:  getEnvAsInt("REPO_PAGE_LIMIT", 10),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
