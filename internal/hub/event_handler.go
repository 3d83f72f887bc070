package hub

import (
	"context"
	"encoding/json"
	"log/slog"

	"wizard-duel/internal/player"
	"wizard-duel/internal/room"
	"wizard-duel/internal/validator"
	"wizard-duel/pkg/proto"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// handleMessage unmarshals and validates a client frame, then dispatches it.
// Malformed frames are dropped; this is a best-effort relay, not a validated
// API, and the client has no recovery path for a frame the server refuses.
func (h *Hub) handleMessage(msg *Inbound) {
	ctx := msg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "hub.handleMessage", trace.WithAttributes(
		attribute.String("conn.id", msg.Player.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(msg.Data, &message); err != nil {
		slog.WarnContext(ctx, "dropping unparseable frame", "conn.id", msg.Player.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unparseable frame")
		return
	}

	if err := validator.Get().Struct(message); err != nil {
		slog.WarnContext(ctx, "dropping invalid frame", "conn.id", msg.Player.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid frame")
		return
	}

	span.SetAttributes(
		attribute.String("message.type", message.Type),
		attribute.String("room.id", message.RoomID),
	)

	switch message.Type {
	case proto.TypeJoin:
		h.handleJoin(ctx, msg.Player, message.RoomID)
	case proto.TypeSubmitMove:
		h.handleSubmitMove(ctx, msg.Player, message.RoomID, message.Move)
	}
}

// handleJoin seats p in the named room, creating it on first join. Any string
// is a valid room id; ids are unique only among currently active rooms.
func (h *Hub) handleJoin(ctx context.Context, p *player.Player, roomID string) {
	ctx, span := tracer.Start(ctx, "hub.handleJoin", trace.WithAttributes(
		attribute.String("conn.id", p.ID),
		attribute.String("room.id", roomID),
	))
	defer span.End()

	r, exists := h.rooms[roomID]
	if !exists {
		r = room.NewRoom(roomID)
		h.rooms[roomID] = r
		h.roomsActive.Add(ctx, 1)
	}

	if r.Full() {
		// Both seats taken. The room is untouched and the caller stays
		// unregistered.
		slog.InfoContext(ctx, "join rejected, room full", "room.id", roomID, "conn.id", p.ID)
		h.joinsRejected.Add(ctx, 1)
		h.send(ctx, p, &proto.ServerToClientMessage{Type: proto.TypeRoomRejected})
		return
	}

	seat, _ := r.Occupy(p)

	h.registry.Bind(p.ID, roomID)
	h.send(ctx, p, &proto.SeatAssignmentMessage{Type: proto.TypeSeatAssigned, Seat: string(seat)})
	slog.InfoContext(ctx, "player seated", "room.id", roomID, "conn.id", p.ID, "seat", seat)

	if seat == room.SeatB {
		h.broadcast(ctx, r, &proto.ServerToClientMessage{Type: proto.TypeMatchStart})
	}
}

// handleSubmitMove buffers a move for the caller's seat and resolves the
// round once both seats have one. Unknown rooms and handles that resolve to
// no seat are ignored without a reply: the former is a harmless race against
// a torn-down room, the latter a spoofed or stale frame that must not leak
// room state.
func (h *Hub) handleSubmitMove(ctx context.Context, p *player.Player, roomID string, move proto.MovePayload) {
	ctx, span := tracer.Start(ctx, "hub.handleSubmitMove", trace.WithAttributes(
		attribute.String("conn.id", p.ID),
		attribute.String("room.id", roomID),
	))
	defer span.End()

	r, exists := h.rooms[roomID]
	if !exists {
		slog.DebugContext(ctx, "move for unknown room ignored", "room.id", roomID, "conn.id", p.ID)
		return
	}

	seat := r.ResolveSeat(p.ID)
	if seat == room.NotSeated {
		slog.DebugContext(ctx, "move from unseated handle ignored", "room.id", roomID, "conn.id", p.ID)
		return
	}
	span.SetAttributes(attribute.String("seat", string(seat)))

	r.BufferMove(seat, move)

	moveA, moveB, done := r.TakeRound()
	if !done {
		// Only the submitter learns it is waiting. The other seat hears
		// nothing until the round resolves.
		h.send(ctx, p, &proto.ServerToClientMessage{Type: proto.TypeWaitingForOpponent})
		return
	}

	slog.InfoContext(ctx, "round complete", "room.id", roomID)
	h.roundsCompleted.Add(ctx, 1)
	h.broadcast(ctx, r, &proto.RoundCompleteMessage{
		Type:      proto.TypeRoundComplete,
		SeatAMove: moveA,
		SeatBMove: moveB,
	})
}

// handleDisconnect tears down the room p was seated in, if any. Teardown is
// immediate: no grace period, no reconnection window. A disconnected player
// rejoins as a brand-new participant.
func (h *Hub) handleDisconnect(ctx context.Context, p *player.Player) {
	ctx, span := tracer.Start(ctx, "hub.handleDisconnect", trace.WithAttributes(
		attribute.String("conn.id", p.ID),
	))
	defer span.End()

	roomID, ok := h.registry.Lookup(p.ID)
	if !ok {
		return
	}
	h.registry.Unbind(p.ID)
	span.SetAttributes(attribute.String("room.id", roomID))

	r, exists := h.rooms[roomID]
	if !exists {
		// Stale index entry; the room already went down with the opponent.
		return
	}

	delete(h.rooms, roomID)
	h.roomsActive.Add(ctx, -1)
	slog.InfoContext(ctx, "room closed on disconnect", "room.id", roomID, "conn.id", p.ID)

	for _, other := range r.Occupants() {
		// Drop every occupant's binding to the dead room so the index never
		// outlives the seats. A later room under the reused id belongs to
		// strangers; a surviving stale binding would let this occupant's own
		// disconnect tear it down. Bindings already re-pointed at another
		// room stay as they are.
		if bound, ok := h.registry.Lookup(other.ID); ok && bound == roomID {
			h.registry.Unbind(other.ID)
		}
		if other.ID == p.ID {
			continue
		}
		h.send(ctx, other, &proto.ServerToClientMessage{Type: proto.TypeOpponentLeft})
	}
}
