package hub

import (
	"context"
	"log/slog"

	"wizard-duel/internal/player"
	"wizard-duel/internal/registry"
	"wizard-duel/internal/room"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("hub")

// Inbound is one raw frame read off a connection, handed to the hub loop.
type Inbound struct {
	Player *player.Player
	Data   []byte
	Ctx    context.Context
}

// Hub owns the room table and the handle→room registry. Join, submitMove and
// disconnect are all applied by the single Run goroutine, so every handler
// executes as one atomic step; nothing else ever touches a Room.
type Hub struct {
	rooms    map[string]*room.Room
	registry *registry.Registry

	inbound    chan *Inbound
	unregister chan *player.Player

	roomsActive     metric.Int64UpDownCounter
	roundsCompleted metric.Int64Counter
	joinsRejected   metric.Int64Counter
}

// NewHub creates a hub with an empty room table.
func NewHub() *Hub {
	m := otel.Meter("hub")

	roomsActive, err := m.Int64UpDownCounter("duel.rooms.active")
	if err != nil {
		slog.Warn("failed to create rooms.active instrument", "error", err)
	}
	roundsCompleted, err := m.Int64Counter("duel.rounds.completed")
	if err != nil {
		slog.Warn("failed to create rounds.completed instrument", "error", err)
	}
	joinsRejected, err := m.Int64Counter("duel.joins.rejected")
	if err != nil {
		slog.Warn("failed to create joins.rejected instrument", "error", err)
	}

	return &Hub{
		rooms:           make(map[string]*room.Room),
		registry:        registry.New(),
		inbound:         make(chan *Inbound, 16),
		unregister:      make(chan *player.Player),
		roomsActive:     roomsActive,
		roundsCompleted: roundsCompleted,
		joinsRejected:   joinsRejected,
	}
}

// Run processes events one at a time until the context is cancelled. No
// handler blocks: each is a synchronous transition against in-memory state,
// so the loop is never held up waiting for an opponent.
func (h *Hub) Run(ctx context.Context) {
	slog.InfoContext(ctx, "hub started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("hub stopping")
			return
		case msg := <-h.inbound:
			h.handleMessage(msg)
		case p := <-h.unregister:
			h.handleDisconnect(context.Background(), p)
		}
	}
}

// Inbound returns the channel read pumps feed client frames into.
func (h *Hub) Inbound() chan<- *Inbound {
	return h.inbound
}

// Unregister returns the channel read pumps signal on connection loss.
func (h *Hub) Unregister() chan<- *player.Player {
	return h.unregister
}
