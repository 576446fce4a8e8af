package site

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/logging"
	"github.com/ziadkadry99/casefile/internal/search"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type  string `json:"type"` // "query", "clear" or "ping"
	Query string `json:"query"`
}

// Update is sent after every query change. Only fragments of visible
// sections and parts are included.
type Update struct {
	Type      string                      `json:"type"` // "update"
	Query     string                      `json:"query"`
	Visible   []string                    `json:"visible"`
	Hidden    []string                    `json:"hidden"`
	Fragments map[string][]search.Segment `json:"fragments"`
	Count     int                         `json:"count"`
	Shown     int                         `json:"shown"`
}

// NewUpdate converts a render pass into an update message.
func NewUpdate(view PageView) Update {
	visible, hidden := view.Visibility()
	return Update{
		Type:      "update",
		Query:     view.Query,
		Visible:   visible,
		Hidden:    hidden,
		Fragments: view.Fragments(),
		Count:     view.MatchCount,
		Shown:     view.VisibleCount,
	}
}

// liveMessage carries the non-update replies.
type liveMessage struct {
	Type    string `json:"type"` // "ready", "pong" or "error"
	Session string `json:"session"`
	Error   string `json:"error,omitempty"`
}

// Session is one browser page view. It owns the query state for that view
// and pushes a fresh update to the client whenever the query changes.
type Session struct {
	ID     string
	page   *content.Page
	state  *search.QueryState
	maxLen int
	send   func(v any) error
	log    *logrus.Entry
	unsub  func()
}

// NewSession starts a session for page. send delivers messages to the
// client; it is only ever called from the goroutine that calls Handle.
func NewSession(page *content.Page, maxLen int, send func(v any) error) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		page:   page,
		state:  search.NewQueryState(),
		maxLen: maxLen,
		send:   send,
	}
	s.log = logging.Component("live").WithFields(logrus.Fields{"session": s.ID, "page": page.Slug})
	s.unsub = s.state.Subscribe(s.recompute)
	return s
}

// State returns the session's query state.
func (s *Session) State() *search.QueryState { return s.state }

// recompute runs the render pass for the new query and sends the result.
func (s *Session) recompute(query string) {
	view := RenderPage(s.page, query)
	if err := s.send(NewUpdate(view)); err != nil {
		s.log.WithError(err).Debug("send update")
	}
}

// Handle applies one client message.
func (s *Session) Handle(msg []byte) {
	var req liveRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		s.sendError("invalid message format")
		return
	}

	switch req.Type {
	case "query":
		q := ClampQuery(req.Query, s.maxLen)
		s.log.WithField("query", q).Debug("query")
		s.state.Set(q)
	case "clear":
		s.state.Clear()
	case "ping":
		s.reply(liveMessage{Type: "pong", Session: s.ID})
	default:
		s.sendError("unknown message type: " + req.Type)
	}
}

// Close detaches the session from its query state.
func (s *Session) Close() {
	s.unsub()
}

func (s *Session) reply(m liveMessage) {
	if err := s.send(m); err != nil {
		s.log.WithError(err).Debug("send reply")
	}
}

func (s *Session) sendError(message string) {
	s.reply(liveMessage{Type: "error", Session: s.ID, Error: message})
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("page")
	page, ok := h.renderer.Site().Page(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown page: "+slug)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	maxLen := h.renderer.Options().MaxQueryLength
	// Over-long queries are truncated by the session, so only bound the frame.
	conn.SetReadLimit(maxHighlightBody)

	sess := NewSession(page, maxLen, conn.WriteJSON)
	defer sess.Close()
	sess.log.Debug("connected")
	sess.reply(liveMessage{Type: "ready", Session: sess.ID})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.WithError(err).Warn("websocket read")
			}
			sess.log.Debug("disconnected")
			return
		}
		sess.Handle(msg)
	}
}
