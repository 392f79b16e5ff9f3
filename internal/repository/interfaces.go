package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rowan/character-forge/internal/domain"
)

// UpdateFields carries a partial update; nil fields are left untouched.
// ID and CreatedAt are never updatable.
type UpdateFields struct {
	Prompt *string
	IsNpc  *bool
	Name   *string
	Data   datatypes.JSON
}

// CharacterRepository is the durable CRUD/query surface over stored
// characters. Every list operation returns newest-first by creation time;
// that ordering is a user-facing contract, not incidental.
type CharacterRepository interface {
	Create(ctx context.Context, character *domain.StoredCharacter) error
	GetAll(ctx context.Context) ([]*domain.StoredCharacter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredCharacter, error)
	GetBySystem(ctx context.Context, system domain.GameSystem) ([]*domain.StoredCharacter, error)
	GetByNpcStatus(ctx context.Context, isNpc bool) ([]*domain.StoredCharacter, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.StoredCharacter, error)
	Search(ctx context.Context, term string) ([]*domain.StoredCharacter, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*domain.StoredCharacter, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type Repositories struct {
	Character CharacterRepository
}
