// Package gateway is a thin HTTP + WebSocket front-end over engine.Engine:
// an ingestion adapter that decodes requests into orders and calls the
// core, plus a streaming view of executed trades. It carries none of the
// authentication, rate-limiting, or risk-check concerns a production
// trading gateway would, since those are out of scope for the matching
// engine this sits in front of.
package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkhoshkam/matchbook/engine"
)

// Gateway wires an engine.Engine to an HTTP router and a WebSocket hub.
type Gateway struct {
	router *gin.Engine
	engine *engine.Engine
	hub    *Hub
	logger *zap.Logger
	depth  int

	upgrader websocket.Upgrader
}

// Config configures a Gateway.
type Config struct {
	Logger        *zap.Logger
	SnapshotDepth int
}

// New constructs a Gateway around eng and wires its routes.
func New(eng *engine.Engine, cfg Config) *Gateway {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.SnapshotDepth <= 0 {
		cfg.SnapshotDepth = 5
	}

	g := &Gateway{
		router: gin.New(),
		engine: eng,
		hub:    NewHub(),
		logger: cfg.Logger,
		depth:  cfg.SnapshotDepth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	g.router.Use(gin.Recovery())
	g.setupRoutes()
	return g
}

// Router exposes the underlying *gin.Engine, e.g. for http.ListenAndServe.
func (g *Gateway) Router() *gin.Engine {
	return g.router
}

// Hub exposes the WebSocket hub so callers can start its Run loop.
func (g *Gateway) Hub() *Hub {
	return g.hub
}

func (g *Gateway) setupRoutes() {
	g.router.GET("/health", g.handleHealth)

	api := g.router.Group("/api/v1")
	api.POST("/symbols/:symbol/orders", g.handleSubmitOrder)
	api.DELETE("/orders/:id", g.handleCancelOrder)
	api.GET("/orders/:id", g.handleGetOrder)
	api.GET("/symbols/:symbol/snapshot", g.handleSnapshot)
	api.GET("/ws", g.handleWebSocket)
}

func (g *Gateway) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type submitOrderRequest struct {
	Side     string  `json:"side" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Quantity int64   `json:"quantity" binding:"required"`
}

func (g *Gateway) handleSubmitOrder(c *gin.Context) {
	symbol := c.Param("symbol")

	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price := decimal.NewFromFloat(req.Price)

	var order *engine.Order
	var err error
	switch req.Side {
	case "bid":
		order, err = engine.BidOrder(symbol, price, req.Quantity)
	case "ask":
		order, err = engine.AskOrder(symbol, price, req.Quantity)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "side must be bid or ask"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blotter, err := g.engine.Submit(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	g.broadcastBlotter(symbol, blotter)
	c.JSON(http.StatusOK, blotter)
}

func (g *Gateway) handleCancelOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := g.engine.Book.CancelByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (g *Gateway) handleGetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, ok := g.engine.Book.GetOrder(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (g *Gateway) handleSnapshot(c *gin.Context) {
	symbol := c.Param("symbol")
	depth := g.depth
	if raw := c.Query("depth"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			depth = parsed
		}
	}

	snap, ok := g.engine.Book.Snapshot(symbol, depth)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "symbol not found"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (g *Gateway) handleWebSocket(c *gin.Context) {
	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := newClient()
	g.hub.register <- client

	go func() {
		defer func() {
			g.hub.unregister <- client
			conn.Close()
		}()
		for msg := range client.Send {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()
}

type tradeMessage struct {
	Symbol string         `json:"symbol"`
	Trades []engine.Trade `json:"trades"`
}

func (g *Gateway) broadcastBlotter(symbol string, blotter engine.Blotter) {
	if len(blotter.Trades) == 0 {
		return
	}
	payload, err := json.Marshal(tradeMessage{Symbol: symbol, Trades: blotter.Trades})
	if err != nil {
		g.logger.Warn("failed to marshal trade broadcast", zap.Error(err))
		return
	}
	g.hub.Broadcast(payload)
}
