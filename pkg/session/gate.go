package session

import (
	"time"

	"github.com/bingetonic/bingetonic/pkg/cache"
)

// DefaultPendingTTL is how long a captured action survives while the
// user signs in.
const DefaultPendingTTL = 15 * time.Minute

// ActionKind names an operation that was interrupted by a sign-in
// prompt.
type ActionKind string

const ActionAddShow ActionKind = "add_show"

// PendingAction is an operation captured when an anonymous user hits an
// auth-gated feature, replayed after they sign in.
type PendingAction struct {
	Kind   ActionKind `json:"kind"`
	TmdbID int32      `json:"tmdbId"`
}

// Gate captures pending actions keyed by client id. Each captured
// action resumes at most once; a recapture overwrites the previous one.
type Gate struct {
	pending *cache.TTLCache[string, PendingAction]
}

// NewGate creates a Gate whose captured actions expire after ttl.
func NewGate(ttl time.Duration) *Gate {
	return &Gate{
		pending: cache.NewTTL[string, PendingAction](ttl),
	}
}

// Capture stores the action the client was attempting.
func (g *Gate) Capture(clientID string, action PendingAction) {
	g.pending.Set(clientID, action)
}

// Resume returns the captured action for the client and forgets it.
func (g *Gate) Resume(clientID string) (PendingAction, bool) {
	return g.pending.Take(clientID)
}

// Discard drops any captured action for the client.
func (g *Gate) Discard(clientID string) {
	g.pending.Delete(clientID)
}
