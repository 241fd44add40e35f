package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI          string
	DBName            string
	AccessTokenSecret string
	StripeSecretKey   string
	ServerPort        string
	LogLevel          string
	KafkaAddress      string
	EventsTopic       string
	ESUrl             string
	ESUser            string
	ESPassword        string
	ESMenuIndex       string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnv("DB_NAME", "restaurantDb"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		ServerPort:        getEnv("SERVER_PORT", "5000"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		KafkaAddress:      os.Getenv("KAFKA_ADDRESS"),
		EventsTopic:       getEnv("EVENTS_TOPIC", "restaurant_events"),
		ESUrl:             os.Getenv("ES_URL"),
		ESUser:            os.Getenv("ES_USER"),
		ESPassword:        os.Getenv("ES_PASSWORD"),
		ESMenuIndex:       getEnv("ES_MENU_INDEX", "menu"),
	}

	return config, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
