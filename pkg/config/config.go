package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	DatabaseURL     string
	Environment     string
	LogLevel        string

	ServiceAccountJSON string
	ServiceAccountPath string

	UsersCollection      string
	AgentsCollection     string
	AgentInboxCollection string
	BidsCollection       string
	CategoriesCollection string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),

		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "./serviceAccountKey.json"),

		UsersCollection:      getEnv("USERS_COLLECTION", "HushUsers"),
		AgentsCollection:     getEnv("AGENTS_COLLECTION", "Hushhagents"),
		AgentInboxCollection: getEnv("AGENT_INBOX_COLLECTION", "HushhAgents"),
		BidsCollection:       getEnv("BIDS_COLLECTION", "bids"),
		CategoriesCollection: getEnv("CATEGORIES_COLLECTION", "agent_categories"),
	}

	return config, nil
}

// ClientOption picks the inline service account JSON when set (production)
// and falls back to the credential file (local development).
func (c *Config) ClientOption() (option.ClientOption, error) {
	if c.ServiceAccountJSON != "" {
		return option.WithCredentialsJSON([]byte(c.ServiceAccountJSON)), nil
	}

	if _, err := os.Stat(c.ServiceAccountPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("service account file does not exist: %s", c.ServiceAccountPath)
	}

	return option.WithCredentialsFile(c.ServiceAccountPath), nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
