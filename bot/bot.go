package bot

import (
	"log"

	"jumpbot/commands"
	"jumpbot/model"
	"jumpbot/panel"
	"jumpbot/storage"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	Session            *discordgo.Session
	Store              *storage.RecordStore
	Service            *panel.Service
	Reconciler         *Reconciler
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	cfg                *model.Config
}

func (b *Bot) GetConfig() *model.Config {
	return b.cfg
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func New(cfg *model.Config, store *storage.RecordStore) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	// Guild and voice-state events keep the state cache current; voice states
	// feed the occupancy counts on the buttons.
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates

	gateway := newSessionGateway(dg)
	service := panel.NewService(store, gateway)
	reconciler := NewReconciler(store, gateway, cfg.RefreshInterval)
	service.SetRefresher(reconciler)

	return &Bot{
		Session:    dg,
		Store:      store,
		Service:    service,
		Reconciler: reconciler,
		cfg:        cfg,
	}, nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.Reconciler.Stop()
	b.Session.Close()
}

// RefreshCommands overwrites the slash commands for one guild. An empty guild
// id registers them globally.
func (b *Bot) RefreshCommands(guildID string) {
	cmds := commands.GenerateCommands()
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, guildID, cmds)
	if err != nil {
		log.Printf("cannot update commands for guild '%s': %v", guildID, err)
		return
	}
	log.Printf("Registered %d commands for guild '%s'", len(registered), guildID)
	b.RegisteredCommands = append(b.RegisteredCommands, registered...)
}
