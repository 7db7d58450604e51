package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jumpbot/health"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) Run() {
	if err := b.Session.Open(); err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	b.RegisteredCommands = make([]*discordgo.ApplicationCommand, 0)
	if len(b.cfg.GuildIDs) > 0 {
		for _, guildID := range b.cfg.GuildIDs {
			b.RefreshCommands(guildID)
		}
	} else {
		log.Println("No GUILD_IDS configured, registering commands globally...")
		b.RefreshCommands("")
	}

	b.Reconciler.Start()
	health.Start(b.cfg.HealthAddr)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
