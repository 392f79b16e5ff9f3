package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/repository"
)

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) repository.CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Create(ctx context.Context, character *domain.StoredCharacter) error {
	if character.ID == uuid.Nil {
		character.ID = uuid.New()
	}
	now := time.Now().UTC()
	character.CreatedAt = now
	character.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(character).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *characterRepository) GetAll(ctx context.Context) ([]*domain.StoredCharacter, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *characterRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredCharacter, error) {
	var character domain.StoredCharacter
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &character, nil
}

func (r *characterRepository) GetBySystem(ctx context.Context, system domain.GameSystem) ([]*domain.StoredCharacter, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("system = ?", system))
}

func (r *characterRepository) GetByNpcStatus(ctx context.Context, isNpc bool) ([]*domain.StoredCharacter, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("is_npc = ?", isNpc))
}

func (r *characterRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.StoredCharacter, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("created_at >= ? AND created_at <= ?", start, end))
}

func (r *characterRepository) Search(ctx context.Context, term string) ([]*domain.StoredCharacter, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	return r.list(ctx, r.db.WithContext(ctx).
		Where("LOWER(prompt) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern))
}

func (r *characterRepository) Update(ctx context.Context, id uuid.UUID, fields repository.UpdateFields) (*domain.StoredCharacter, error) {
	character, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.Prompt != nil {
		character.Prompt = *fields.Prompt
	}
	if fields.IsNpc != nil {
		character.IsNpc = *fields.IsNpc
	}
	if fields.Name != nil {
		character.Name = *fields.Name
	}
	if fields.Data != nil {
		character.Data = fields.Data
	}
	character.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(character).Error; err != nil {
		return nil, storeErr(err)
	}
	return character, nil
}

// Delete removes the record. Deleting an absent id is a no-op so client
// retries stay safe.
func (r *characterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.StoredCharacter{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *characterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.StoredCharacter{}).Count(&count).Error; err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

func (r *characterRepository) list(ctx context.Context, query *gorm.DB) ([]*domain.StoredCharacter, error) {
	var characters []*domain.StoredCharacter
	// id breaks ties so records created in the same instant list in a
	// stable order.
	if err := query.Order("created_at DESC, id DESC").Find(&characters).Error; err != nil {
		return nil, storeErr(err)
	}
	return characters, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
