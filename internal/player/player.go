package player

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Player represents one connected client. ID is the opaque connection handle
// minted at upgrade time; it lives exactly as long as the connection.
type Player struct {
	ID   string
	Conn Connection
}

// NewPlayer creates a player for a freshly upgraded connection.
func NewPlayer(id string, conn Connection) *Player {
	return &Player{ID: id, Conn: conn}
}
