package proto

import "encoding/json"

// Client-to-server message types.
const (
	TypeJoin       = "join"
	TypeSubmitMove = "submitMove"
)

// Server-to-client message types.
const (
	TypeSeatAssigned       = "seatAssigned"
	TypeMatchStart         = "matchStart"
	TypeRoomRejected       = "roomRejected"
	TypeWaitingForOpponent = "waitingForOpponent"
	TypeRoundComplete      = "roundComplete"
	TypeOpponentLeft       = "opponentLeft"
)

// MovePayload is whatever the client chose to send for its move. The server
// relays it byte-for-byte and never looks inside; combat rules live in the
// client.
type MovePayload = json.RawMessage

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type   string      `json:"type" validate:"required,oneof=join submitMove"`
	RoomID string      `json:"roomId" validate:"required"`
	Move   MovePayload `json:"move,omitempty" validate:"required_if=Type submitMove"`
}

// SeatAssignmentMessage informs a client which seat it occupies.
type SeatAssignmentMessage struct {
	Type string `json:"type"`
	Seat string `json:"seat"`
}

// RoundCompleteMessage carries both buffered moves, seat-labeled. Both seats
// receive the same pair in the same message.
type RoundCompleteMessage struct {
	Type      string      `json:"type"`
	SeatAMove MovePayload `json:"seatAMove"`
	SeatBMove MovePayload `json:"seatBMove"`
}

// ServerToClientMessage covers the payload-free server notifications
// (matchStart, roomRejected, waitingForOpponent, opponentLeft).
type ServerToClientMessage struct {
	Type string `json:"type"`
}
