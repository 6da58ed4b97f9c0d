package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/session"
	"github.com/bingetonic/bingetonic/pkg/storage"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/model"
	"github.com/bingetonic/bingetonic/pkg/watchlist"
	"go.uber.org/zap"
)

var ErrEmailTaken = errors.New("an account with this email already exists")
var ErrBadCredentials = errors.New("email or password is incorrect")

// Credentials are a sign-up or sign-in request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Session is an issued session returned to the client.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// SignUp creates an account and signs the new user in. Their local
// watchlist migrates in the background.
func (m *Manager) SignUp(ctx context.Context, creds Credentials) (Session, error) {
	if err := m.validate.Struct(creds); err != nil {
		return Session{}, fmt.Errorf("invalid credentials: %w", err)
	}

	hash, err := m.sessions.HashPassword(creds.Password)
	if err != nil {
		return Session{}, err
	}

	userID, err := m.storage.CreateUser(ctx, model.User{
		Email:        creds.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return Session{}, ErrEmailTaken
		}
		return Session{}, err
	}

	return m.startSession(ctx, userID, creds.Email)
}

// SignIn verifies credentials and issues a session. The local watchlist
// migrates in the background.
func (m *Manager) SignIn(ctx context.Context, creds Credentials) (Session, error) {
	if err := m.validate.Struct(creds); err != nil {
		return Session{}, ErrBadCredentials
	}

	user, err := m.storage.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Session{}, ErrBadCredentials
		}
		return Session{}, err
	}

	if !m.sessions.VerifyPassword(user.PasswordHash, creds.Password) {
		return Session{}, ErrBadCredentials
	}

	return m.startSession(ctx, user.ID, user.Email)
}

func (m *Manager) startSession(ctx context.Context, userID, email string) (Session, error) {
	token, err := m.sessions.IssueToken(userID, email)
	if err != nil {
		return Session{}, err
	}

	go func() {
		// detached so a slow migration never delays the sign-in response
		ctx := logger.WithCtx(context.Background(), logger.FromCtx(ctx))
		if err := m.MigrateLocal(ctx, userID); err != nil {
			logger.FromCtx(ctx).Warn("failed to migrate local watchlist",
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}()

	return Session{Token: token, UserID: userID, Email: email}, nil
}

// MigrateLocal moves the anonymous watchlist into the user's account.
// Entries the account already has are skipped, so running it twice is
// harmless. The local list is cleared only after every entry made it
// over.
func (m *Manager) MigrateLocal(ctx context.Context, userID string) error {
	log := logger.FromCtx(ctx)

	shows, err := m.local.List(ctx)
	if err != nil {
		return err
	}
	if len(shows) == 0 {
		return nil
	}

	// no mirror while migrating; the local list must survive until
	// every entry made it over
	remote := watchlist.NewRemoteStore(m.storage, nil, userID)

	migrated, failed := 0, 0
	for i := len(shows) - 1; i >= 0; i-- { // oldest first keeps list order
		show := shows[i]
		added, err := remote.Add(ctx, show)
		if err != nil {
			if errors.Is(err, watchlist.ErrAlreadyAdded) {
				// the account already tracks it; account state wins
				migrated++
				continue
			}
			// each show migrates on its own; one failure must not
			// strand the rest
			log.Warn("failed to migrate show", zap.String("title", show.Title), zap.Error(err))
			failed++
			continue
		}

		if show.Watched {
			// watched state rides along; a failure here loses a flag,
			// not a show
			if _, err := remote.SetWatched(ctx, added.ID, true); err != nil {
				log.Debug("failed to carry watched flag", zap.String("title", show.Title), zap.Error(err))
			}
		}
		migrated++
	}

	log.Info("migrated local watchlist", zap.String("user_id", userID), zap.Int("migrated", migrated), zap.Int("failed", failed))
	if failed > 0 {
		// the local list sticks around so the next sign-in retries
		return fmt.Errorf("failed to migrate %d of %d shows", failed, len(shows))
	}
	return m.local.Clear(ctx)
}

// Authenticate resolves a bearer token to an identity. A token whose
// account no longer exists is rejected like any other bad token.
func (m *Manager) Authenticate(ctx context.Context, token string) (session.Identity, error) {
	id, err := m.sessions.Verify(token)
	if err != nil {
		return session.Identity{}, err
	}

	if _, err := m.storage.GetUser(ctx, id.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return session.Identity{}, session.ErrInvalidToken
		}
		return session.Identity{}, err
	}

	return id, nil
}

// CapturePending records an action an anonymous client attempted, to be
// replayed after sign-in.
func (m *Manager) CapturePending(clientID string, action session.PendingAction) {
	m.gate.Capture(clientID, action)
}

// ResumePending replays the client's captured action, if any. It runs
// at most once per capture and requires an identity on the context.
func (m *Manager) ResumePending(ctx context.Context, clientID string) (*watchlist.Show, error) {
	if _, ok := session.FromCtx(ctx); !ok {
		return nil, errors.New("resume requires a signed-in session")
	}

	action, ok := m.gate.Resume(clientID)
	if !ok {
		return nil, nil
	}

	switch action.Kind {
	case session.ActionAddShow:
		show, err := m.AddShow(ctx, action.TmdbID)
		if err != nil {
			if errors.Is(err, watchlist.ErrAlreadyAdded) {
				return nil, nil
			}
			return nil, err
		}
		return &show, nil
	default:
		return nil, fmt.Errorf("unknown pending action %q", action.Kind)
	}
}
