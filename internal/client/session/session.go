// Package session owns the client's authentication state: the signed-in
// user, their tokens, and their profile. All mutations go through the
// Session so views observe one consistent account state.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/beautyease/beautyease/internal/client/api"
	"github.com/beautyease/beautyease/internal/client/localstore"
	"github.com/beautyease/beautyease/internal/logging"
	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

// Session is the single writer of client auth state. Methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	api    api.Client
	meta   *localstore.MetadataRepository
	logger logging.Logger

	userID       string
	accessToken  string
	refreshToken string
	profile      *wire.Profile
}

func New(apiClient api.Client, meta *localstore.MetadataRepository, logger logging.Logger) *Session {
	return &Session{api: apiClient, meta: meta, logger: logger.With("module", "session")}
}

// IsLoggedIn reports whether a user is signed in.
func (s *Session) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken != ""
}

// UserID returns the signed-in user's ID, or "".
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Profile returns the cached profile, or nil when signed out.
func (s *Session) Profile() *wire.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SignUp creates an account and signs it in. The full name is validated
// locally first: a blank name fails with shared.ErrValidation before any
// request leaves the client, so the caller's form state stays intact.
func (s *Session) SignUp(ctx context.Context, email, password, fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("%w: full name is required", shared.ErrValidation)
	}

	tokens, err := s.api.Register(ctx, wire.RegisterRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		return err
	}

	return s.adopt(ctx, tokens)
}

// SignIn authenticates and loads the user's profile.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	tokens, err := s.api.Login(ctx, wire.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	return s.adopt(ctx, tokens)
}

// SignOut clears the session. The in-memory state is gone before SignOut
// returns; the remote token revocation and local wipe are best-effort.
func (s *Session) SignOut(ctx context.Context) {
	s.mu.Lock()
	refreshToken := s.refreshToken
	s.userID = ""
	s.accessToken = ""
	s.refreshToken = ""
	s.profile = nil
	s.mu.Unlock()

	if refreshToken != "" {
		if err := s.api.Logout(ctx, refreshToken); err != nil {
			s.logger.Warn(ctx, "failed to revoke refresh token", "error", err)
		}
	}
	if err := s.meta.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "failed to clear local session data", "error", err)
	}
}

// Restore tries to resume the previous session from the locally saved
// refresh token. It returns true when a session was resumed; any failure
// leaves the session signed out without surfacing an error to the user.
func (s *Session) Restore(ctx context.Context) bool {
	saved, err := s.meta.Get(ctx, localstore.KeyRefreshToken)
	if err != nil || len(saved) == 0 {
		return false
	}

	tokens, err := s.api.Refresh(ctx, string(saved))
	if err != nil {
		s.logger.Debug(ctx, "session restore failed", "error", err)
		if err := s.meta.Delete(ctx, localstore.KeyRefreshToken); err != nil {
			s.logger.Warn(ctx, "failed to drop stale refresh token", "error", err)
		}
		return false
	}

	if err := s.adopt(ctx, tokens); err != nil {
		return false
	}
	return true
}

// UpdateProfile applies a partial profile update and refreshes the cache.
func (s *Session) UpdateProfile(ctx context.Context, patch wire.ProfilePatch) (*wire.Profile, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}

	profile, err := s.api.UpdateProfile(ctx, token, patch)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return profile, nil
}

// SaveScan stores a completed assessment under the signed-in user.
func (s *Session) SaveScan(ctx context.Context, req wire.SaveScanRequest) (*wire.Scan, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.api.SaveScan(ctx, token, req)
}

// ListScans returns the user's recent assessments, newest first.
func (s *Session) ListScans(ctx context.Context, limit int) ([]wire.Scan, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.api.ListScans(ctx, token, limit)
}

// UploadStill uploads an encoded still to storage and returns the storage
// key to attach to a saved scan.
func (s *Session) UploadStill(ctx context.Context, mime string, data []byte) (string, error) {
	token, err := s.token()
	if err != nil {
		return "", err
	}

	grant, err := s.api.UploadURL(ctx, token)
	if err != nil {
		return "", err
	}
	if err := s.api.UploadStill(ctx, grant.URL, mime, data); err != nil {
		return "", err
	}
	return grant.Key, nil
}

// ScanImageURL exchanges a stored still's key for a short-lived view URL.
func (s *Session) ScanImageURL(ctx context.Context, key string) (string, error) {
	token, err := s.token()
	if err != nil {
		return "", err
	}
	return s.api.DownloadURL(ctx, token, key)
}

// adopt installs a fresh token pair, persists it, and loads the profile.
func (s *Session) adopt(ctx context.Context, tokens *wire.TokenResponse) error {
	profile, err := s.api.GetProfile(ctx, tokens.AccessToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.userID = tokens.UserID
	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.profile = profile
	s.mu.Unlock()

	if err := s.meta.Set(ctx, localstore.KeyUserID, []byte(tokens.UserID)); err != nil {
		s.logger.Warn(ctx, "failed to save user id", "error", err)
	}
	if err := s.meta.Set(ctx, localstore.KeyRefreshToken, []byte(tokens.RefreshToken)); err != nil {
		s.logger.Warn(ctx, "failed to save refresh token", "error", err)
	}
	return nil
}

func (s *Session) token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accessToken == "" {
		return "", shared.ErrUnauthorized
	}
	return s.accessToken, nil
}
