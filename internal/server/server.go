package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/LoocasGoose/BetaGomoku/gomoku"
	"github.com/LoocasGoose/BetaGomoku/internal/config"
)

// Server is the HTTP and websocket front end. All game logic lives in the
// engine; handlers only translate between the wire and sessions.
type Server struct {
	log      zerolog.Logger
	cfg      config.Config
	registry *Registry
	store    *RecordStore
	router   chi.Router
}

func New(cfg config.Config, log zerolog.Logger) (*Server, error) {
	store, err := NewRecordStore(cfg.RecordsDir)
	if err != nil {
		return nil, err
	}
	s := &Server{
		log:      log,
		cfg:      cfg,
		registry: NewRegistry(),
		store:    store,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.router }

// Close stops the session hubs.
func (s *Server) Close() { s.registry.Close() }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/", s.handleListSessions)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/move", s.handleMove)
			r.Post("/step", s.handleStep)
			r.Post("/undo", s.handleUndo)
			r.Post("/save", s.handleSave)
		})
	})

	r.Get("/api/saved", s.handleListSaved)
	r.Get("/api/saved/{name}", s.handleGetSaved)
	r.Post("/api/replay", s.handleReplay)

	r.Get("/ws/sessions/{id}", s.handleWS)
	return r
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	cfg := s.cfg.Search
	mode := ModeHumanVsAI
	human := gomoku.Black
	if r.Body != nil && r.ContentLength != 0 {
		// Decoding into the configured search settings makes a partial
		// override merge instead of zeroing the unmentioned fields.
		payload := struct {
			Mode        string         `json:"mode"`
			HumanPlayer int            `json:"human_player"`
			Search      *gomoku.Config `json:"search"`
		}{Search: &cfg}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, errorDTO{Error: "invalid payload"})
			return
		}
		switch payload.Mode {
		case "", string(ModeHumanVsAI):
		case string(ModeAIVsAI):
			mode = ModeAIVsAI
		default:
			writeJSON(w, http.StatusBadRequest, errorDTO{Error: "unknown mode"})
			return
		}
		if payload.HumanPlayer == 2 {
			human = gomoku.White
		}
	}
	session := s.registry.Create(cfg, mode, human)
	s.log.Info().
		Str("session", session.ID).
		Str("mode", string(mode)).
		Int("depth", cfg.Depth).
		Msg("session created")
	writeJSON(w, http.StatusCreated, session.Snapshot())
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": s.registry.List()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.registry.Delete(id) {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: "unknown session"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var payload struct {
		Point string `json:"point"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: "invalid payload"})
		return
	}
	p, err := gomoku.ParsePoint(payload.Point)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: err.Error()})
		return
	}
	out, reply, err := session.ApplyHuman(p)
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	resp := moveResponse{Move: outcomeToDTO(out)}
	if reply != nil {
		dto := outcomeToDTO(*reply)
		resp.Reply = &dto
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	out, err := session.StepAI()
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	s.log.Debug().
		Str("session", session.ID).
		Str("move", out.Move.Point.String()).
		Int("score", out.Score).
		Int("nodes", out.Stats.Nodes).
		Dur("elapsed", out.Stats.Elapsed).
		Msg("engine move")
	writeJSON(w, http.StatusOK, outcomeToDTO(out))
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := session.Undo(); err != nil {
		s.writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var payload struct {
		Black string `json:"black"`
		White string `json:"white"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, errorDTO{Error: "invalid payload"})
			return
		}
	}
	name, err := s.store.Save(session.Export(payload.Black, payload.White))
	if err != nil {
		s.log.Error().Err(err).Str("session", session.ID).Msg("save failed")
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "save failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "list failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"records": names})
}

func (s *Server) handleGetSaved(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Load(chi.URLParam(r, "name"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: "unknown record"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
		Upto *int   `json:"upto"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: "invalid payload"})
		return
	}
	rec, err := s.store.Load(payload.Name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: "unknown record"})
		return
	}
	// Upto is an inclusive move index (-1 = empty board); omitting it
	// replays the whole record.
	upto := len(rec.Moves) - 1
	if payload.Upto != nil {
		upto = *payload.Upto
	}
	state, err := rec.Replay(upto)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessionToDTO("", state, s.cfg.Search, "", 0))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	session, ok := s.registry.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: "unknown session"})
		return
	}
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: session.hub, send: make(chan []byte, 16)}
	session.hub.Register(client)
	client.sendJSON(wsMessage{Type: "state", Payload: mustMarshal(session.Snapshot())})

	go func() {
		defer conn.Close()
		for data := range client.send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			session.hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_state":
			client.sendJSON(wsMessage{Type: "state", Payload: mustMarshal(session.Snapshot())})
		}
	}
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	session, ok := s.registry.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: "unknown session"})
		return nil, false
	}
	return session, true
}

// writeGameError maps engine errors to status codes: illegal moves are bad
// requests carrying the engine's reason, undo without history conflicts with
// the game state, search invariants are bugs.
func (s *Server) writeGameError(w http.ResponseWriter, err error) {
	var illegal *gomoku.IllegalMoveError
	var empty *gomoku.EmptyHistoryError
	var invariant *gomoku.SearchInvariantError
	switch {
	case errors.As(err, &illegal):
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: err.Error()})
	case errors.As(err, &empty):
		writeJSON(w, http.StatusConflict, errorDTO{Error: err.Error()})
	case errors.As(err, &invariant):
		s.log.Error().Err(err).Msg("search invariant violated")
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// NewLogger builds the server logger at the configured level.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
