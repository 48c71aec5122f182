// Package services contains server-side business logic. This file implements
// SessionService, which checks the dashboard credentials and issues and
// verifies the signed session token kept in the dashboard cookie.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/auth"
	"github.com/dmitrijs2005/studiosite/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

type SessionService struct {
	adminEmail    string
	adminPassword string
	jwtSecret     []byte
	sessionTTL    time.Duration
}

// NewSessionService builds a SessionService. Without a usable signing key
// (see config.SessionSecretUsable) it issues and accepts no sessions.
func NewSessionService(cfg *config.Config) *SessionService {
	s := &SessionService{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		sessionTTL:    cfg.SessionTTL,
	}
	if cfg.SessionSecretUsable() {
		s.jwtSecret = []byte(cfg.SecretKey)
	}
	return s
}

// Login checks email and password against the configured admin credentials
// and returns a session token. It always fails while either credential or
// the signing key is unset.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPassword == "" || len(s.jwtSecret) == 0 {
		return "", common.ErrorUnauthorized
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(email)), []byte(s.adminEmail)) == 1
	passwordOK := s.checkPassword(password)
	if !emailOK || !passwordOK {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(common.SessionSubject, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Verify reports whether token is a valid, unexpired dashboard session.
func (s *SessionService) Verify(token string) error {
	if token == "" || len(s.jwtSecret) == 0 {
		return common.ErrorUnauthorized
	}
	sub, err := auth.GetSubjectFromToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrorUnauthorized
	}
	if sub != common.SessionSubject {
		return common.ErrorUnauthorized
	}
	return nil
}

// TTL is the lifetime of a session token and its cookie.
func (s *SessionService) TTL() time.Duration {
	return s.sessionTTL
}

// checkPassword accepts either a bcrypt hash or a plain value in the
// configured admin password.
func (s *SessionService) checkPassword(candidate string) bool {
	if strings.HasPrefix(s.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.adminPassword)) == 1
}
