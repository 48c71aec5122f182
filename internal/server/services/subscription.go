package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/config"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/repomanager"
)

// SubscriptionService handles newsletter signups.
type SubscriptionService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	maxPageLimit int
}

func NewSubscriptionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SubscriptionService {
	return &SubscriptionService{db: db, repomanager: m, maxPageLimit: cfg.MaxPageLimit}
}

// Subscribe stores a normalized email. A repeated address yields
// common.ErrorAlreadySubscribed.
func (s *SubscriptionService) Subscribe(ctx context.Context, email string) (*models.Subscription, error) {
	if strings.TrimSpace(email) == "" {
		return nil, common.MissingFields("email")
	}
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	sub, err := s.repomanager.Subscriptions(s.db).Create(ctx, normalized)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadySubscribed
		}
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return sub, nil
}

func (s *SubscriptionService) List(ctx context.Context, page models.Page) ([]*models.Subscription, models.Pagination, error) {
	page = clampPage(page, s.maxPageLimit)

	subs, total, err := s.repomanager.Subscriptions(s.db).List(ctx, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, models.NewPagination(page, total), nil
}

// NormalizeEmail trims and lowercases raw and checks that it is a bare
// address whose domain contains a dot.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", common.ErrorInvalidEmail
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", common.ErrorInvalidEmail
	}
	return email, nil
}
