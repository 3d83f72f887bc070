package hub

import (
	"context"
	"encoding/json"
	"log/slog"

	"wizard-duel/internal/player"
	"wizard-duel/internal/room"

	"github.com/gorilla/websocket"
)

// send writes one message to one player. Write failures are logged and
// otherwise ignored; the read pump will notice the dead connection and drive
// the disconnect path.
func (h *Hub) send(ctx context.Context, p *player.Player, message any) {
	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		return
	}
	if err := p.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.WarnContext(ctx, "error writing message to player", "conn.id", p.ID, "error", err)
	}
}

// broadcast sends the same message to every occupant of a room.
func (h *Hub) broadcast(ctx context.Context, r *room.Room, message any) {
	for _, p := range r.Occupants() {
		h.send(ctx, p, message)
	}
}
