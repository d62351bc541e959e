package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/jwt"
	"github.com/plumeria/retreat-api/internal/pkg/password"
)

// Service handles admin auth business logic
type Service struct {
	repo Repository
	jwt  *jwt.Service
}

// NewService creates admin service
func NewService(repo Repository, jwtSvc *jwt.Service) *Service {
	return &Service{repo: repo, jwt: jwtSvc}
}

// Login verifies credentials and issues a token
func (s *Service) Login(ctx context.Context, email, pwd string) (*LoginResponse, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil || !password.Verify(pwd, a.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(a.ID, a.Email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TouchLogin(ctx, a.ID); err != nil {
		log.Warn().Err(err).Str("admin_id", a.ID.String()).Msg("Failed to record admin login time")
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwt.TTL()),
	}, nil
}

// GetByID returns admin by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}
