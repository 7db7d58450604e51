package model

import "time"

// Config 存储应用程序的配置
type Config struct {
	BotToken        string
	GuildIDs        []string
	DataDir         string
	BannerImageURL  string
	PanelRoleID     string
	HealthAddr      string
	RefreshInterval time.Duration
}
