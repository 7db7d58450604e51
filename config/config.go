package config

import (
	"log"
	"strings"
	"time"

	"jumpbot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from the environment (and an optional .env file).
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("HEALTH_ADDR", ":8080")
	viper.SetDefault("REFRESH_INTERVAL_SECONDS", 15)

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	panelRoleID := viper.GetString("PANEL_ROLE_ID")
	if panelRoleID == "" {
		log.Println("Warning: PANEL_ROLE_ID not set, panel commands will not be role-gated")
	}

	var guildIDs []string
	for _, id := range strings.Split(viper.GetString("GUILD_IDS"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			guildIDs = append(guildIDs, id)
		}
	}

	interval := viper.GetInt("REFRESH_INTERVAL_SECONDS")
	if interval <= 0 {
		log.Printf("Warning: invalid REFRESH_INTERVAL_SECONDS value %d, using default of 15", interval)
		interval = 15
	}

	cfg := &model.Config{
		BotToken:        token,
		GuildIDs:        guildIDs,
		DataDir:         viper.GetString("DATA_DIR"),
		BannerImageURL:  viper.GetString("BANNER_IMAGE_URL"),
		PanelRoleID:     panelRoleID,
		HealthAddr:      viper.GetString("HEALTH_ADDR"),
		RefreshInterval: time.Duration(interval) * time.Second,
	}

	return cfg, nil
}
