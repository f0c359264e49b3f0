package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub tracks which connections listen to which room and turns client actions
// into room operations.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	joined      map[*client]string
	roomManager RoomManager
	maxName     int
}

func NewHub(roomManager RoomManager, maxNameLength int) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		joined:      make(map[*client]string),
		roomManager: roomManager,
		maxName:     maxNameLength,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS upgrades the request and serves the connection until it closes.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	h.serve(conn)
}

func (h *Hub) serve(conn *websocket.Conn) {
	cl := &client{id: uuid.NewString(), conn: conn}
	logger := log.With().Str("conn", cl.id).Logger()
	logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("connected")

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.keepAlive(cl, done)
	defer func() {
		close(done)
		h.disconnect(cl)
		_ = conn.Close()
		logger.Debug().Msg("disconnected")
	}()

	h.send(cl, EventConnected, connectedPayload{ConnectionID: cl.id})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("read failed")
			}
			return
		}
		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			h.fail(cl, CodeBadRequest, "message is not a JSON envelope")
			continue
		}
		h.dispatch(cl, msg)
	}
}

func (h *Hub) keepAlive(cl *client, done <-chan struct{}) {
	t := time.NewTicker(pingPeriod)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if err := cl.ping(); err != nil {
				return
			}
		}
	}
}

func (h *Hub) dispatch(cl *client, msg inbound) {
	switch msg.Action {
	case ActionJoinRoom:
		h.handleJoin(cl, msg.Data)
	case ActionStartGame:
		h.handleStart(cl)
	case ActionRollDice:
		h.handleRoll(cl, msg.Data)
	case ActionResetGame:
		h.handleReset(cl)
	case ActionSyncState:
		h.handleSync(cl)
	default:
		h.fail(cl, CodeUnknownAction, "unknown action "+msg.Action)
	}
}

// Broadcast sends an event to every connection subscribed to roomCode.
func (h *Hub) Broadcast(roomCode string, action string, data any) {
	msg, err := json.Marshal(outbound{Action: action, Data: data})
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("encode broadcast")
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.write(msg); err != nil {
			log.Warn().Err(err).Str("conn", cl.id).Str("room", roomCode).Msg("broadcast failed")
			_ = cl.conn.Close()
		}
	}
}

func (h *Hub) send(cl *client, action string, data any) {
	msg, err := json.Marshal(outbound{Action: action, Data: data})
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("encode message")
		return
	}
	if err := cl.write(msg); err != nil {
		log.Warn().Err(err).Str("conn", cl.id).Msg("send failed")
		_ = cl.conn.Close()
	}
}

func (h *Hub) subscribe(cl *client, roomCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
	h.joined[cl] = roomCode
}

func (h *Hub) unsubscribe(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	code, ok := h.joined[cl]
	if !ok {
		return
	}
	delete(h.joined, cl)
	delete(h.rooms[code], cl)
	if len(h.rooms[code]) == 0 {
		delete(h.rooms, code)
	}
}

func (h *Hub) roomOf(cl *client) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	code, ok := h.joined[cl]
	return code, ok
}

// Subscribers reports how many connections listen to roomCode.
func (h *Hub) Subscribers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}
