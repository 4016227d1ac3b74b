package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"huggable/config"
	"huggable/internal/cli"
)

func main() {
	// Load .env before viper reads the environment. A missing file is
	// expected outside development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	cli.Execute(cfg)
}
