package main

import (
	"log"
	"os"
	"path/filepath"

	"jumpbot/bot"
	"jumpbot/config"
	"jumpbot/handlers"
	"jumpbot/storage"
	"jumpbot/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	utils.SetupLogging(cfg.DataDir)

	backend := storage.NewFileBackend(filepath.Join(cfg.DataDir, "data.json"))
	store := storage.NewRecordStore(backend)

	b, err := bot.New(cfg, store)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run()

	defer b.Close()
}
