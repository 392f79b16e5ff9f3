package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/export"
	"github.com/rowan/character-forge/internal/generation"
	"github.com/rowan/character-forge/internal/repository"
)

// CharacterService composes the generation adapter and the persistence
// store. Generation and persistence stay sequential: a generation failure
// never reaches the store, so no partial record is ever left behind.
type CharacterService struct {
	characterRepo repository.CharacterRepository
	generator     *generation.Generator
	logger        *zap.Logger
}

func NewCharacterService(characterRepo repository.CharacterRepository, generator *generation.Generator, logger *zap.Logger) *CharacterService {
	return &CharacterService{
		characterRepo: characterRepo,
		generator:     generator,
		logger:        logger,
	}
}

type GenerateInput struct {
	System      domain.GameSystem
	Prompt      string
	IncludeNPCs bool
	NPCCount    int
}

type GenerateOutput struct {
	Character *domain.StoredCharacter
	NPCs      []*domain.StoredCharacter
}

// GenerateAndStore runs one generation call and persists the results. NPCs
// share the originating prompt and are flagged IsNpc.
func (s *CharacterService) GenerateAndStore(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	npcCount := 0
	if input.IncludeNPCs {
		npcCount = input.NPCCount
	}

	result, err := s.generator.GenerateWithNPCs(ctx, input.System, input.Prompt, npcCount)
	if err != nil {
		return nil, err
	}

	stored, err := domain.NewStoredCharacter(result.Character, input.Prompt, false)
	if err != nil {
		return nil, err
	}
	if err := s.characterRepo.Create(ctx, stored); err != nil {
		return nil, err
	}

	npcs := make([]*domain.StoredCharacter, 0, len(result.NPCs))
	for _, npc := range result.NPCs {
		storedNpc, err := domain.NewStoredCharacter(npc, input.Prompt, true)
		if err != nil {
			return nil, err
		}
		if err := s.characterRepo.Create(ctx, storedNpc); err != nil {
			return nil, err
		}
		npcs = append(npcs, storedNpc)
	}

	s.logger.Info("generated character",
		zap.String("system", string(input.System)),
		zap.String("name", stored.Name),
		zap.Int("npcs", len(npcs)))

	return &GenerateOutput{Character: stored, NPCs: npcs}, nil
}

func (s *CharacterService) GetAll(ctx context.Context) ([]*domain.StoredCharacter, error) {
	return s.characterRepo.GetAll(ctx)
}

func (s *CharacterService) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredCharacter, error) {
	return s.characterRepo.GetByID(ctx, id)
}

func (s *CharacterService) GetBySystem(ctx context.Context, system domain.GameSystem) ([]*domain.StoredCharacter, error) {
	if !system.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSystem, system)
	}
	return s.characterRepo.GetBySystem(ctx, system)
}

func (s *CharacterService) GetByNpcStatus(ctx context.Context, isNpc bool) ([]*domain.StoredCharacter, error) {
	return s.characterRepo.GetByNpcStatus(ctx, isNpc)
}

func (s *CharacterService) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.StoredCharacter, error) {
	return s.characterRepo.GetByDateRange(ctx, start, end)
}

func (s *CharacterService) Search(ctx context.Context, term string) ([]*domain.StoredCharacter, error) {
	return s.characterRepo.Search(ctx, term)
}

type UpdateInput struct {
	Prompt *string
	IsNpc  *bool
}

func (s *CharacterService) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.StoredCharacter, error) {
	return s.characterRepo.Update(ctx, id, repository.UpdateFields{
		Prompt: input.Prompt,
		IsNpc:  input.IsNpc,
	})
}

func (s *CharacterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.characterRepo.Delete(ctx, id)
}

func (s *CharacterService) Count(ctx context.Context) (int64, error) {
	return s.characterRepo.Count(ctx)
}

// Export loads a stored character and renders it as a markdown document,
// returning a download filename alongside the content.
func (s *CharacterService) Export(ctx context.Context, id uuid.UUID) (filename, content string, err error) {
	stored, err := s.characterRepo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	content, err = export.Render(stored)
	if err != nil {
		return "", "", err
	}
	return exportFilename(stored.Name), content, nil
}

// ClearGenerationCache drops memoized generation results.
func (s *CharacterService) ClearGenerationCache() {
	s.generator.ClearCache()
}

func exportFilename(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, slug)
	if slug == "" {
		slug = "character"
	}
	return slug + ".md"
}
