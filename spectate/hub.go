package spectate

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/munchies/session"
	"github.com/lixenwraith/munchies/status"
)

const (
	sendBuffer   = 4
	writeTimeout = 2 * time.Second
)

// Poster accepts commands for the next frame
type Poster interface {
	Post(cmd session.Command)
}

// Stick is the remote joystick a spectator may drive
type Stick interface {
	Set(dx, dy float64)
	Release()
	Dash()
}

// Options are the collaborators a hub forwards remote input to
type Options struct {
	Commands Poster
	Stick    Stick
	Logger   *log.Logger
	Status   *status.Registry
}

type client struct {
	id    uuid.UUID
	conn  *websocket.Conn
	codec Codec
	send  chan []byte
}

// clientMessage is one inbound frame; Type selects which fields apply
type clientMessage struct {
	Type string  `json:"type"`
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
	Cmd  string  `json:"cmd"`
	Arg  string  `json:"arg"`
	Step int     `json:"step"`
}

// Hub fans snapshots out to websocket clients and feeds their input back to the session
// Broadcast never blocks: a client whose buffer is full misses that frame
type Hub struct {
	opts     Options
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uuid.UUID]*client
	last    *Snapshot
	closed  bool
}

func NewHub(opts Options) *Hub {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	return &Hub{
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[uuid.UUID]*client),
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast encodes the snapshot once per codec in use and queues it to every client
func (h *Hub) Broadcast(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &s
	if len(h.clients) == 0 {
		return
	}

	encoded := make(map[Codec][]byte, 2)
	for _, c := range h.clients {
		data, ok := encoded[c.codec]
		if !ok {
			var err error
			if data, err = c.codec.Encode(&s); err != nil {
				h.opts.Logger.Error("snapshot encode failed", "codec", c.codec, "err", err)
				data = nil
			}
			encoded[c.codec] = data
		}
		// clients on a failed codec skip this frame
		if data == nil {
			continue
		}
		select {
		case c.send <- data:
		default:
			h.opts.Status.Ints.Get("spectate.dropped").Add(1)
		}
	}
}

// ServeHTTP upgrades the request and runs the client until it disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	codec, err := ParseCodec(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.opts.Logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c := &client{
		id:    uuid.New(),
		conn:  conn,
		codec: codec,
		send:  make(chan []byte, sendBuffer),
	}
	if !h.add(c) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	h.opts.Logger.Info("spectator connected", "client", c.id, "codec", codec, "remote", r.RemoteAddr)

	go h.writeLoop(c)
	h.readLoop(c)
}

// add registers the client and queues the latest snapshot for it
func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	h.opts.Status.Ints.Get("spectate.clients").Store(int64(len(h.clients)))

	if h.last != nil {
		if data, err := c.codec.Encode(h.last); err == nil {
			c.send <- data
		}
	}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	h.opts.Status.Ints.Get("spectate.clients").Store(int64(len(h.clients)))
}

func (h *Hub) writeLoop(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(c.codec.MessageType(), data); err != nil {
			h.opts.Logger.Debug("spectator write failed", "client", c.id, "err", err)
			c.conn.Close()
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		// A stick left deflected by a vanished client would steer forever
		if h.opts.Stick != nil {
			h.opts.Stick.Release()
		}
		h.remove(c)
		h.opts.Logger.Info("spectator disconnected", "client", c.id)
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.opts.Logger.Debug("discarding malformed message", "client", c.id, "err", err)
			continue
		}
		h.dispatch(c, msg)
	}
}

// dispatch routes one remote message; quitting the game is local only
func (h *Hub) dispatch(c *client, msg clientMessage) {
	switch msg.Type {
	case "joystick":
		if h.opts.Stick != nil {
			h.opts.Stick.Set(msg.DX, msg.DY)
		}
	case "release":
		if h.opts.Stick != nil {
			h.opts.Stick.Release()
		}
	case "dash":
		if h.opts.Stick != nil {
			h.opts.Stick.Dash()
		}
	case "command":
		kind, ok := session.ParseCommandKind(msg.Cmd)
		if !ok || kind == session.CmdQuit || kind == session.CmdToggleMute || h.opts.Commands == nil {
			h.opts.Status.Ints.Get("spectate.rejected").Add(1)
			h.opts.Logger.Debug("remote command rejected", "client", c.id, "cmd", msg.Cmd)
			return
		}
		h.opts.Commands.Post(session.Command{Kind: kind, Arg: msg.Arg, Step: msg.Step})
	default:
		h.opts.Logger.Debug("unknown message type", "client", c.id, "type", msg.Type)
	}
}

// Close disconnects every client and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}
