package admin

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines admin data access
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	TouchLogin(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates admin repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	query := `SELECT * FROM admins WHERE LOWER(email) = LOWER($1)`
	var a Admin
	err := r.db.GetContext(ctx, &a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	query := `SELECT * FROM admins WHERE id = $1`
	var a Admin
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) TouchLogin(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE admins SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// memoryRepository holds a single bootstrap admin for fixtures mode.
type memoryRepository struct {
	mu    sync.Mutex
	admin *Admin
}

// NewMemoryRepository creates an in-memory repository with one admin.
// passwordHash must already be bcrypt-hashed.
func NewMemoryRepository(email, name, passwordHash string) Repository {
	return &memoryRepository{
		admin: &Admin{
			ID:           uuid.New(),
			Email:        email,
			Name:         name,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (r *memoryRepository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !strings.EqualFold(r.admin.Email, email) {
		return nil, nil
	}
	cp := *r.admin
	return &cp, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.admin.ID != id {
		return nil, nil
	}
	cp := *r.admin
	return &cp, nil
}

func (r *memoryRepository) TouchLogin(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.admin.ID == id {
		r.admin.LastLoginAt = sql.NullTime{Time: time.Now(), Valid: true}
	}
	return nil
}
