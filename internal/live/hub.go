// Package live fans match snapshots out to websocket spectators.
package live

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Spectators only send pings.
	maxMessageSize = 4 * 1024

	sendBuffer = 16
	idleAfter  = 5 * time.Minute
)

// Message types
const (
	MsgTypeSnapshot = "SNAPSHOT"
	MsgTypeClosed   = "CLOSED"
	MsgTypePing     = "PING"
	MsgTypePong     = "PONG"
)

// Message is what spectators receive.
type Message struct {
	Type     string          `json:"type"`
	MatchID  string          `json:"match_id,omitempty"`
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

var errHubClosed = errors.New("live: hub closed")

// Hub holds the spectators of one match.
type Hub struct {
	matchID string

	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan Message
	pong       chan *client
	quit       chan struct{}
	done       chan struct{}
	closeOnce  sync.Once

	hm *HubManager
}

func newHub(matchID string, hm *HubManager) *Hub {
	return &Hub{
		matchID:    matchID,
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Message, 64),
		pong:       make(chan *client),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		hm:         hm,
	}
}

func (h *Hub) run() {
	idle := time.NewTicker(idleAfter)
	defer idle.Stop()
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow spectator.
					close(c.send)
					delete(h.clients, c)
				}
			}
		case c := <-h.pong:
			if h.clients[c] {
				select {
				case c.send <- Message{Type: MsgTypePong, MatchID: h.matchID}:
				default:
				}
			}
		case <-idle.C:
			if len(h.clients) == 0 {
				h.hm.remove(h)
				return
			}
		case <-h.quit:
			for c := range h.clients {
				select {
				case c.send <- Message{Type: MsgTypeClosed, MatchID: h.matchID}:
				default:
				}
				close(c.send)
				delete(h.clients, c)
			}
			return
		}
	}
}

func (h *Hub) stop() {
	h.closeOnce.Do(func() { close(h.quit) })
}

func (h *Hub) join(c *client) error {
	select {
	case h.register <- c:
		return nil
	case <-h.done:
		return errHubClosed
	}
}

func (h *Hub) leave(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// HubManager keeps one hub per match with spectators.
type HubManager struct {
	mu   sync.Mutex
	hubs map[string]*Hub

	upgrader websocket.Upgrader
	log      logrus.FieldLogger
}

// NewHubManager accepts upgrades from the serving host and from allowedOrigins.
func NewHubManager(log logrus.FieldLogger, allowedOrigins ...string) *HubManager {
	hm := &HubManager{hubs: make(map[string]*Hub), log: log}
	hm.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					return true
				}
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false
			}
			return u.Host == r.Host
		},
	}
	return hm
}

func (hm *HubManager) hub(matchID string) *Hub {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	if h, ok := hm.hubs[matchID]; ok {
		return h
	}
	h := newHub(matchID, hm)
	hm.hubs[matchID] = h
	go h.run()
	return h
}

func (hm *HubManager) remove(h *Hub) {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	if hm.hubs[h.matchID] == h {
		delete(hm.hubs, h.matchID)
	}
}

func snapshotMessage(matchID string, snapshot any) (Message, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return Message{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return Message{Type: MsgTypeSnapshot, MatchID: matchID, Snapshot: raw}, nil
}

// Broadcast sends snapshot to every spectator of matchID. It never blocks
// the scorer: when the hub is backed up the update is dropped.
func (hm *HubManager) Broadcast(matchID string, snapshot any) {
	hm.mu.Lock()
	h, ok := hm.hubs[matchID]
	hm.mu.Unlock()
	if !ok {
		return
	}
	msg, err := snapshotMessage(matchID, snapshot)
	if err != nil {
		hm.log.WithFields(logrus.Fields{"match_id": matchID}).WithError(err).Error("broadcast")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		hm.log.WithFields(logrus.Fields{"match_id": matchID}).Warn("hub backed up, dropping snapshot")
	}
}

// Serve upgrades the request and attaches a spectator to matchID, sending
// current as the first message.
func (hm *HubManager) Serve(w http.ResponseWriter, r *http.Request, matchID string, current any) error {
	first, err := snapshotMessage(matchID, current)
	if err != nil {
		return err
	}
	conn, err := hm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade: %w", err)
	}
	c := &client{conn: conn, send: make(chan Message, sendBuffer)}
	c.send <- first

	for attempt := 0; ; attempt++ {
		c.hub = hm.hub(matchID)
		err = c.hub.join(c)
		if err == nil {
			break
		}
		if attempt > 0 {
			conn.Close()
			return err
		}
	}

	go c.writePump()
	go c.readPump()
	hm.log.WithFields(logrus.Fields{"match_id": matchID, "remote": r.RemoteAddr}).Debug("spectator joined")
	return nil
}

// Close disconnects every spectator of matchID.
func (hm *HubManager) Close(matchID string) {
	hm.mu.Lock()
	h, ok := hm.hubs[matchID]
	delete(hm.hubs, matchID)
	hm.mu.Unlock()
	if ok {
		h.stop()
	}
}

// Shutdown closes all hubs.
func (hm *HubManager) Shutdown() {
	hm.mu.Lock()
	hubs := hm.hubs
	hm.hubs = make(map[string]*Hub)
	hm.mu.Unlock()
	for _, h := range hubs {
		h.stop()
	}
}

// client is a middleman between the websocket connection and the hub.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// readPump keeps the read deadline alive and answers application pings.
func (c *client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.hm.log.WithFields(logrus.Fields{"match_id": c.hub.matchID}).WithError(err).Debug("spectator read")
			}
			return
		}
		if msg.Type != MsgTypePing {
			continue
		}
		// The hub owns c.send, so the reply goes through it.
		select {
		case c.hub.pong <- c:
		case <-c.hub.done:
			return
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
