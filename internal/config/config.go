package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	BotToken         string
	ServerPort       string
	QuestionsPerQuiz int
	SeedFile         string
}

func Load() *Config {
	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "quizbot"),
		BotToken:         getEnv("TELEGRAM_BOT_TOKEN", ""),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		QuestionsPerQuiz: getEnvInt("QUESTIONS_PER_QUIZ", 10),
		SeedFile:         getEnv("SEED_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
