package room

import (
	"wizard-duel/internal/player"
	"wizard-duel/pkg/proto"
)

// Seat identifies one of the two fixed participant slots in a room.
type Seat string

const (
	SeatA     Seat = "A"
	SeatB     Seat = "B"
	NotSeated Seat = ""
)

// Room is a named pairing context: up to two seated players and one round's
// worth of buffered moves. A Room has no locking of its own; the hub's event
// loop is the single writer for every room.
type Room struct {
	ID      string
	seatA   *player.Player
	seatB   *player.Player
	pending map[Seat]proto.MovePayload
}

// NewRoom creates an empty room under the given id.
func NewRoom(id string) *Room {
	return &Room{
		ID:      id,
		pending: make(map[Seat]proto.MovePayload, 2),
	}
}

// Occupy seats p in the first free seat, A before B. It returns NotSeated and
// false when both seats are already taken; the room is left untouched.
func (r *Room) Occupy(p *player.Player) (Seat, bool) {
	switch {
	case r.seatA == nil:
		r.seatA = p
		return SeatA, true
	case r.seatB == nil:
		r.seatB = p
		return SeatB, true
	default:
		return NotSeated, false
	}
}

// ResolveSeat maps a connection handle to the seat it occupies. Handles that
// were never a party to this room resolve to NotSeated, which every caller
// treats as "ignore".
func (r *Room) ResolveSeat(handle string) Seat {
	if r.seatA != nil && r.seatA.ID == handle {
		return SeatA
	}
	if r.seatB != nil && r.seatB.ID == handle {
		return SeatB
	}
	return NotSeated
}

// Full reports whether both seats are occupied.
func (r *Room) Full() bool {
	return r.seatA != nil && r.seatB != nil
}

// Occupants returns the seated players, seat A first.
func (r *Room) Occupants() []*player.Player {
	out := make([]*player.Player, 0, 2)
	if r.seatA != nil {
		out = append(out, r.seatA)
	}
	if r.seatB != nil {
		out = append(out, r.seatB)
	}
	return out
}

// BufferMove stores a move for the given seat, replacing any earlier
// unresolved submission from that seat. Last write wins.
func (r *Room) BufferMove(seat Seat, move proto.MovePayload) {
	r.pending[seat] = move
}

// TakeRound atomically drains the buffer when both seats have submitted.
// It returns ok=false, leaving the buffer as-is, while either seat is still
// outstanding. The check-and-clear must stay a single step so a round can
// never be resolved twice.
func (r *Room) TakeRound() (moveA, moveB proto.MovePayload, ok bool) {
	moveA, hasA := r.pending[SeatA]
	moveB, hasB := r.pending[SeatB]
	if !hasA || !hasB {
		return nil, nil, false
	}
	r.pending = make(map[Seat]proto.MovePayload, 2)
	return moveA, moveB, true
}

// PendingCount reports how many seats currently have a buffered move.
func (r *Room) PendingCount() int {
	return len(r.pending)
}
