package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	OpenAIAPIKey     string
	OpenAIModel      string
	HFAPIKey         string
	HFBaseURL        string
	HFZeroShotModel  string
	ServiceName      string
	ServiceVersion   string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "assessment_service"),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		OpenAIAPIKey:     getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		HFAPIKey:         getEnvOrDefault("HF_API_KEY", ""),
		HFBaseURL:        getEnvOrDefault("HF_BASE_URL", "https://api-inference.huggingface.co"),
		HFZeroShotModel:  getEnvOrDefault("HF_ZEROSHOT_MODEL", "facebook/bart-large-mnli"),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "assessment-service"),
		ServiceVersion:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
