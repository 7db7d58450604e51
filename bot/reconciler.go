package bot

import (
	"log"
	"sync"
	"time"

	"jumpbot/model"
	"jumpbot/panel"
	"jumpbot/storage"
)

const refreshWorkers = 5

type refreshOutcome int

const (
	refreshUpdated refreshOutcome = iota
	refreshSkipped
	refreshFailed
)

// Reconciler periodically re-renders every stored panel against live channel
// state and pushes the result to the remote message. It has two states: idle
// (before the first Start) and running, for the rest of the process lifetime.
type Reconciler struct {
	store    *storage.RecordStore
	gateway  Gateway
	interval time.Duration

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

func NewReconciler(store *storage.RecordStore, gateway Gateway, interval time.Duration) *Reconciler {
	return &Reconciler{
		store:    store,
		gateway:  gateway,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start moves the reconciler from idle to running. Starting an already
// running reconciler is a no-op.
func (r *Reconciler) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	go r.loop()
	log.Printf("reconciler: started, interval=%s", r.interval)
}

// Stop terminates the refresh loop. Only used at process shutdown.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	close(r.done)
}

func (r *Reconciler) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.tick()
		case <-r.done:
			return
		}
	}
}

// tick runs one pass over the full record collection. A gateway that is not
// ready yet skips the pass entirely; that is a normal condition during
// startup and reconnects, not an error.
func (r *Reconciler) tick() {
	if !r.gateway.Ready() {
		return
	}
	r.refresh(r.store.Records())
}

// RefreshGuild reconciles only the records of one guild and returns how many
// messages were updated. Backing for the manual refresh command; it may race
// with the periodic tick, which is fine because the edit payload for a given
// snapshot is deterministic.
func (r *Reconciler) RefreshGuild(guildID string) int {
	if !r.gateway.Ready() {
		return 0
	}
	return r.refresh(r.store.GuildRecords(guildID))
}

// refresh reconciles a batch of records through a bounded worker pool. Every
// record is an independent attempt; one broken record never stalls occupancy
// updates for the others.
func (r *Reconciler) refresh(records []model.PanelRecord) int {
	if len(records) == 0 {
		return 0
	}

	recordChan := make(chan model.PanelRecord, len(records))
	outcomeChan := make(chan refreshOutcome, len(records))

	var wg sync.WaitGroup
	for i := 0; i < refreshWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range recordChan {
				outcomeChan <- r.refreshRecord(rec)
			}
		}()
	}

	for _, rec := range records {
		recordChan <- rec
	}
	close(recordChan)
	wg.Wait()
	close(outcomeChan)

	var updated, skipped, failed int
	for outcome := range outcomeChan {
		switch outcome {
		case refreshUpdated:
			updated++
		case refreshSkipped:
			skipped++
		case refreshFailed:
			failed++
		}
	}

	if skipped > 0 || failed > 0 {
		log.Printf("reconciler: pass finished total=%d updated=%d skipped=%d failed=%d",
			len(records), updated, skipped, failed)
	}
	return updated
}

// refreshRecord re-renders one panel and edits its message's components in
// place; the message body and embed are left untouched. Resolution failures
// are skips, never fatal, and never deregister the record: the guild may be
// briefly unavailable, or an administrator may recreate a deleted channel.
func (r *Reconciler) refreshRecord(rec model.PanelRecord) refreshOutcome {
	snap, ok := r.gateway.GuildSnapshot(rec.GuildID)
	if !ok {
		log.Printf("reconciler: guild %s not resolvable, skipping panel %s", rec.GuildID, rec.MessageID)
		return refreshSkipped
	}

	if err := r.gateway.FetchMessage(rec.MessageChannelID, rec.MessageID); err != nil {
		log.Printf("reconciler: cannot fetch panel message %s in channel %s: %v",
			rec.MessageID, rec.MessageChannelID, err)
		return refreshSkipped
	}

	rendered := panel.BuildButtons(rec.GuildID, rec.ChannelIDs, snap)
	if len(rendered.InvalidIDs) > 0 {
		log.Printf("reconciler: panel %s has %d unresolvable channel ids: %v",
			rec.MessageID, len(rendered.InvalidIDs), rendered.InvalidIDs)
	}

	if err := r.gateway.EditComponents(rec.MessageChannelID, rec.MessageID, rendered.Components()); err != nil {
		log.Printf("reconciler: failed to edit panel message %s: %v", rec.MessageID, err)
		return refreshFailed
	}
	return refreshUpdated
}
