package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	TgToken           string
	ListenAddr        string
	DefaultSampleSize int
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance.
func GetConfig() *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil {
			log.Println("no .env file found, using environment variables")
		}

		listenAddr := os.Getenv("LISTEN_ADDR")
		if listenAddr == "" {
			listenAddr = ":8005"
		}

		defaultSampleSize := 100
		if raw := os.Getenv("DEFAULT_SAMPLE_SIZE"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				log.Fatalln("DEFAULT_SAMPLE_SIZE must be a positive integer, got", raw)
			}
			defaultSampleSize = n
		}

		config = &Config{
			TgToken:           os.Getenv("TG_TOKEN"),
			ListenAddr:        listenAddr,
			DefaultSampleSize: defaultSampleSize,
		}
	})
	return config
}
