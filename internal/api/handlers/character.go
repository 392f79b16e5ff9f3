package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/generation"
	"github.com/rowan/character-forge/internal/service"
)

type CharacterHandler struct {
	characterService *service.CharacterService
	logger           *zap.Logger
}

func NewCharacterHandler(characterService *service.CharacterService, logger *zap.Logger) *CharacterHandler {
	return &CharacterHandler{characterService: characterService, logger: logger}
}

type GenerateRequest struct {
	System      string `json:"system"`
	Prompt      string `json:"prompt"`
	IncludeNpcs bool   `json:"includeNpcs"`
	NpcCount    int    `json:"npcCount"`
}

type GenerateResponse struct {
	Character *domain.StoredCharacter   `json:"character"`
	Npcs      []*domain.StoredCharacter `json:"npcs"`
}

type CharactersResponse struct {
	Characters []*domain.StoredCharacter `json:"characters"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func (h *CharacterHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	system, err := domain.ParseGameSystem(req.System)
	if err != nil {
		http.Error(w, "Unknown game system", http.StatusBadRequest)
		return
	}

	out, err := h.characterService.GenerateAndStore(r.Context(), service.GenerateInput{
		System:      system,
		Prompt:      req.Prompt,
		IncludeNPCs: req.IncludeNpcs,
		NPCCount:    req.NpcCount,
	})
	if err != nil {
		h.writeError(w, "character.Generate", err)
		return
	}

	npcs := out.NPCs
	if npcs == nil {
		npcs = []*domain.StoredCharacter{}
	}
	writeJSON(w, http.StatusOK, GenerateResponse{Character: out.Character, Npcs: npcs})
}

// List serves the compendium. Optional query filters: system, npc, q,
// start/end (RFC 3339, inclusive). Results are always newest-first.
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var characters []*domain.StoredCharacter
	var err error
	switch {
	case q.Get("q") != "":
		characters, err = h.characterService.Search(ctx, q.Get("q"))
	case q.Get("system") != "":
		var system domain.GameSystem
		system, err = domain.ParseGameSystem(q.Get("system"))
		if err != nil {
			http.Error(w, "Unknown game system", http.StatusBadRequest)
			return
		}
		characters, err = h.characterService.GetBySystem(ctx, system)
	case q.Get("npc") != "":
		var isNpc bool
		isNpc, err = strconv.ParseBool(q.Get("npc"))
		if err != nil {
			http.Error(w, "Invalid npc filter", http.StatusBadRequest)
			return
		}
		characters, err = h.characterService.GetByNpcStatus(ctx, isNpc)
	case q.Get("start") != "" || q.Get("end") != "":
		var start, end time.Time
		start, end, err = parseDateRange(q.Get("start"), q.Get("end"))
		if err != nil {
			http.Error(w, "Invalid date range", http.StatusBadRequest)
			return
		}
		characters, err = h.characterService.GetByDateRange(ctx, start, end)
	default:
		characters, err = h.characterService.GetAll(ctx)
	}
	if err != nil {
		h.writeError(w, "character.List", err)
		return
	}

	if characters == nil {
		characters = []*domain.StoredCharacter{}
	}
	writeJSON(w, http.StatusOK, CharactersResponse{Characters: characters})
}

func (h *CharacterHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.characterService.Count(r.Context())
	if err != nil {
		h.writeError(w, "character.Count", err)
		return
	}
	writeJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid character id", http.StatusBadRequest)
		return
	}

	character, err := h.characterService.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, "character.Get", err)
		return
	}
	writeJSON(w, http.StatusOK, character)
}

type UpdateRequest struct {
	Prompt *string `json:"prompt"`
	IsNpc  *bool   `json:"isNpc"`
}

func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid character id", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	character, err := h.characterService.Update(r.Context(), id, service.UpdateInput{
		Prompt: req.Prompt,
		IsNpc:  req.IsNpc,
	})
	if err != nil {
		h.writeError(w, "character.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, character)
}

func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid character id", http.StatusBadRequest)
		return
	}

	if err := h.characterService.Delete(r.Context(), id); err != nil {
		h.writeError(w, "character.Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CharacterHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid character id", http.StatusBadRequest)
		return
	}

	filename, content, err := h.characterService.Export(r.Context(), id)
	if err != nil {
		h.writeError(w, "character.Export", err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(content))
}

func (h *CharacterHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.characterService.ClearGenerationCache()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CharacterHandler) writeError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("request failed", zap.String("op", op), zap.Error(err))

	switch {
	case generation.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Character not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrMalformedResponse):
		http.Error(w, "Generation returned an unusable response, try again", http.StatusBadGateway)
	case errors.Is(err, domain.ErrGenerationService):
		http.Error(w, "Generation service unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now().UTC()
	var err error
	if startStr != "" {
		start, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endStr != "" {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}
