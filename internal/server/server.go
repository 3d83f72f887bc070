package server

import (
	"log/slog"
	"net/http"

	"wizard-duel/internal/config"
	"wizard-duel/internal/hub"
	"wizard-duel/internal/player"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Server owns the HTTP surface: the websocket upgrade endpoint, a liveness
// probe, and the static client build.
type Server struct {
	hub      *hub.Hub
	engine   *gin.Engine
	upgrader websocket.Upgrader
}

// NewServer wires the gin engine and routes.
func NewServer(h *hub.Hub, cfg config.Config) *Server {
	s := &Server{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/ws", s.handleWebSocket)
	engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.WebDir))))
	s.engine = engine

	return s
}

// Engine exposes the router for the http.Server in main.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// handleWebSocket upgrades the connection, mints the connection handle and
// starts the read pump. The handle is the player's only identity; it dies
// with the connection.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
	))
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to upgrade connection")
		return
	}

	handle := uuid.New().String()
	span.SetAttributes(attribute.String("conn.id", handle))
	slog.InfoContext(ctx, "client connected", "conn.id", handle)

	p := player.NewPlayer(handle, conn)
	go s.readPump(p)
}

// readPump forwards frames from the connection into the hub until the
// connection drops, then signals the disconnect. This is the only goroutine
// that reads from the connection; gorilla requires a single reader.
func (s *Server) readPump(p *player.Player) {
	defer func() {
		p.Conn.Close()
		s.hub.Unregister() <- p
	}()

	for {
		_, data, err := p.Conn.ReadMessage()
		if err != nil {
			slog.Info("client disconnected", "conn.id", p.ID, "error", err)
			return
		}
		s.hub.Inbound() <- &hub.Inbound{Player: p, Data: data}
	}
}
