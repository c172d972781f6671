package server

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LoocasGoose/BetaGomoku/gomoku"
)

// Mode says who plays which color. In ModeHumanVsAI the engine answers a
// human move synchronously; in ModeAIVsAI the game only advances when the
// API steps it.
type Mode string

const (
	ModeHumanVsAI Mode = "human_vs_ai"
	ModeAIVsAI    Mode = "ai_vs_ai"
)

// Session binds one game to one search agent and one broadcast hub. All
// game access goes through the session mutex; the engine itself is
// single-threaded.
type Session struct {
	ID      string
	Created time.Time
	Mode    Mode
	Human   gomoku.Player

	mu    sync.Mutex
	state *gomoku.GameState
	agent *gomoku.SearchAgent
	hub   *Hub
	done  chan struct{}
}

// MoveOutcome describes what one applied move did, for responses and
// broadcasts.
type MoveOutcome struct {
	Move     gomoku.Move
	Status   gomoku.Status
	ByEngine bool
	Score    int
	Stats    gomoku.SearchStats
}

func newSession(cfg gomoku.Config, mode Mode, human gomoku.Player) *Session {
	state := gomoku.NewGameState()
	state.OverlineWins = cfg.OverlineWins
	s := &Session{
		ID:      uuid.NewString(),
		Created: time.Now(),
		Mode:    mode,
		Human:   human,
		state:   state,
		agent:   gomoku.NewSearchAgent(cfg),
		hub:     NewHub(),
		done:    make(chan struct{}),
	}
	go s.hub.Run(s.done)
	return s
}

// close stops the session's hub goroutine. Called exactly once, by the
// registry that owns the session.
func (s *Session) close() {
	close(s.done)
}

// ApplyHuman places a stone for whichever player is to move. In human-vs-AI
// mode the engine answers synchronously while the game is still live; the
// second outcome is the engine reply, if any.
func (s *Session) ApplyHuman(p gomoku.Point) (MoveOutcome, *MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	player := s.state.ToMove
	if err := s.state.Place(p, player); err != nil {
		return MoveOutcome{}, nil, err
	}
	out := MoveOutcome{
		Move:   gomoku.Move{Point: p, Player: player},
		Status: s.state.Status,
	}

	var reply *MoveOutcome
	if s.Mode == ModeHumanVsAI && !s.state.IsOver() && s.state.ToMove != s.Human {
		engineOut, err := s.stepAILocked()
		if err != nil {
			s.broadcastLocked()
			return out, nil, err
		}
		reply = &engineOut
	}
	s.broadcastLocked()
	return out, reply, nil
}

// StepAI asks the engine for one move and applies it.
func (s *Session) StepAI() (MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := s.stepAILocked()
	if err != nil {
		return MoveOutcome{}, err
	}
	s.broadcastLocked()
	return out, nil
}

func (s *Session) stepAILocked() (MoveOutcome, error) {
	player := s.state.ToMove
	p, err := s.agent.SelectMove(s.state)
	if err != nil {
		return MoveOutcome{}, err
	}
	if err := s.state.Place(p, player); err != nil {
		return MoveOutcome{}, err
	}
	return MoveOutcome{
		Move:     gomoku.Move{Point: p, Player: player},
		Status:   s.state.Status,
		ByEngine: true,
		Score:    s.agent.LastScore(),
		Stats:    s.agent.LastStats(),
	}, nil
}

// Undo takes back the last two moves.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.UndoPair(); err != nil {
		return err
	}
	s.broadcastLocked()
	return nil
}

// Snapshot copies the session state for a response.
func (s *Session) Snapshot() SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Export turns the session into a portable record.
func (s *Session) Export(black, white string) gomoku.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gomoku.NewRecord(s.state, black, white)
}

func (s *Session) snapshotLocked() SessionDTO {
	return sessionToDTO(s.ID, s.state, s.agent.Config(), s.Mode, s.Human)
}

func (s *Session) broadcastLocked() {
	s.hub.Broadcast(s.snapshotLocked())
}

// Registry owns the live sessions. Sessions are never expired implicitly;
// the API deletes them.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Create(cfg gomoku.Config, mode Mode, human gomoku.Player) *Session {
	s := newSession(cfg, mode, human)
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	delete(r.sessions, id)
	s.close()
	return true
}

func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close stops every remaining session hub. Sessions already deleted were
// stopped at deletion.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		delete(r.sessions, id)
		s.close()
	}
}
