package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"flipseven/internal/app"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Controller exposes the health endpoint and the WebSocket entry point.
type Controller struct {
	svc    *app.Service
	hub    *Hub
	logger *slog.Logger
}

// NewController wires the delivery adapter. A nil logger falls back to
// slog.Default.
func NewController(svc *app.Service, hub *Hub, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{svc: svc, hub: hub, logger: logger}
}

// RegisterRoutes attaches the controller's routes to the router.
func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", c.health)
	router.GET("/ws", c.serveWS)
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "rooms": c.svc.Rooms()})
}

func (c *Controller) serveWS(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	client := newClient(c.hub, c.svc, conn, c.logger)
	go client.writePump()
	go client.readPump()
}
