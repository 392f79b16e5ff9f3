// Package generation turns a (system, prompt) pair into validated domain
// characters by calling an external schema-constrained generation service.
// It never touches the persistence store; composing generate-then-persist is
// the service layer's job, keeping the two failure domains separable.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/schema"
)

const (
	MinNPCCount = 0
	MaxNPCCount = 3
)

// Result is the outcome of one generation call. NPCs is empty unless the
// request asked for companions.
type Result struct {
	Character domain.Character
	NPCs      []domain.Character
}

type Generator struct {
	client ModelClient
	cache  *Cache
	logger *zap.Logger
}

func NewGenerator(client ModelClient, logger *zap.Logger) *Generator {
	return &Generator{
		client: client,
		cache:  NewCache(),
		logger: logger,
	}
}

// Generate produces a single validated character for the system.
func (g *Generator) Generate(ctx context.Context, system domain.GameSystem, prompt string) (domain.Character, error) {
	res, err := g.GenerateWithNPCs(ctx, system, prompt, 0)
	if err != nil {
		return domain.Character{}, err
	}
	return res.Character, nil
}

// GenerateWithNPCs produces a character plus npcCount related NPCs in one
// model call. Input validation happens before any network activity; identical
// requests may be served from the cache.
func (g *Generator) GenerateWithNPCs(ctx context.Context, system domain.GameSystem, prompt string, npcCount int) (Result, error) {
	if !system.Valid() {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedSystem, system)
	}
	if strings.TrimSpace(prompt) == "" {
		return Result{}, domain.ErrEmptyPrompt
	}
	if npcCount < MinNPCCount || npcCount > MaxNPCCount {
		return Result{}, fmt.Errorf("%w: %d", domain.ErrInvalidNPCCount, npcCount)
	}

	key := cacheKey{System: string(system), Prompt: prompt, NPCCount: npcCount}
	if res, ok := g.cache.Get(key); ok {
		g.logger.Debug("generation cache hit",
			zap.String("system", string(system)),
			zap.Int("npcCount", npcCount))
		return res, nil
	}

	def, err := schema.GenerationContract(system, npcCount)
	if err != nil {
		return Result{}, err
	}

	payload, err := g.client.GenerateJSON(ctx, Request{
		SystemInstruction: buildInstruction(def.DisplayName, npcCount),
		Prompt:            buildPrompt(prompt),
		Contract:          def.Contract,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", domain.ErrGenerationService, err)
	}

	res, err := parseResult(system, npcCount, []byte(payload))
	if err != nil {
		return Result{}, err
	}

	g.cache.Put(key, res)
	return res, nil
}

// ClearCache drops all memoized generation results.
func (g *Generator) ClearCache() {
	g.cache.Clear()
}

// npcEnvelope mirrors the NPC-inclusive generation contract.
type npcEnvelope struct {
	Character json.RawMessage   `json:"character"`
	NPCs      []json.RawMessage `json:"npcs"`
}

func parseResult(system domain.GameSystem, npcCount int, payload []byte) (Result, error) {
	if npcCount == 0 {
		character, err := schema.DecodeCharacter(system, payload)
		if err != nil {
			return Result{}, err
		}
		return Result{Character: character}, nil
	}

	var envelope npcEnvelope
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&envelope); err != nil {
		return Result{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if envelope.Character == nil {
		return Result{}, fmt.Errorf("%w: missing character", domain.ErrMalformedResponse)
	}
	if len(envelope.NPCs) > MaxNPCCount {
		return Result{}, fmt.Errorf("%w: %d npcs exceeds limit of %d", domain.ErrMalformedResponse, len(envelope.NPCs), MaxNPCCount)
	}

	character, err := schema.DecodeCharacter(system, envelope.Character)
	if err != nil {
		return Result{}, err
	}

	npcs := make([]domain.Character, 0, len(envelope.NPCs))
	for i, raw := range envelope.NPCs {
		npc, err := schema.DecodeCharacter(system, raw)
		if err != nil {
			return Result{}, fmt.Errorf("npc %d: %w", i, err)
		}
		npcs = append(npcs, npc)
	}

	return Result{Character: character, NPCs: npcs}, nil
}

// IsValidationError reports whether err is bad caller input rather than an
// external failure.
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrEmptyPrompt) ||
		errors.Is(err, domain.ErrUnsupportedSystem) ||
		errors.Is(err, domain.ErrInvalidNPCCount)
}
