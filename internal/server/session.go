package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/valpere/sareview/internal"
)

// Session is the per-reviewer state that survives between interactions: the
// current draft, the chosen target language, and the meta fields captured at
// generation time. Handlers read it, build a new value, and replace it only
// on success, so a failed call leaves the previous draft intact.
type Session struct {
	ReviewID string                  `json:"review_id"`
	Meta     internal.AssessmentMeta `json:"meta"`
	Draft    string                  `json:"draft"`
	Language string                  `json:"language"`
}

// sessionRegistry maps session cookies to state. The tool is built for a
// single reviewer, but the web server is inherently concurrent, so access
// is guarded.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*Session)}
}

// get returns the session for id, creating an empty one (and a fresh id when
// id is empty) as needed. The returned id is always valid.
func (r *sessionRegistry) get(id string) (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		id = uuid.New().String()
	}
	sess, ok := r.sessions[id]
	if !ok {
		sess = &Session{Language: "English"}
		r.sessions[id] = sess
	}
	return id, sess
}

// put replaces the session state for id.
func (r *sessionRegistry) put(id string, sess *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = sess
}
