// Package schema defines the structured-output contract sent to the
// generation model for each supported game system, and the strict decoding of
// model payloads back into domain characters.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/rowan/character-forge/internal/domain"
)

// Definition pairs a system's display name with the output contract the
// generation model must satisfy.
type Definition struct {
	System      domain.GameSystem
	DisplayName string
	Contract    *genai.Schema
}

// For returns the generation contract for a system. The system set is closed,
// so an error here means a caller bypassed input validation; it is never
// silently defaulted.
func For(system domain.GameSystem) (Definition, error) {
	var contract *genai.Schema
	switch system {
	case domain.SystemDND5E:
		contract = dnd5eContract()
	case domain.SystemDaggerheart:
		contract = daggerheartContract()
	case domain.SystemBlades:
		contract = bladesContract()
	default:
		return Definition{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedSystem, system)
	}
	return Definition{
		System:      system,
		DisplayName: system.DisplayName(),
		Contract:    contract,
	}, nil
}

// GenerationContract wraps a system's contract for NPC-inclusive generation:
// one primary character plus companion NPCs under the same system contract.
func GenerationContract(system domain.GameSystem, npcCount int) (Definition, error) {
	def, err := For(system)
	if err != nil {
		return Definition{}, err
	}
	if npcCount <= 0 {
		return def, nil
	}
	def.Contract = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"character": def.Contract,
			"npcs": {
				Type:        genai.TypeArray,
				Description: fmt.Sprintf("Exactly %d supporting non-player characters related to the main character.", npcCount),
				Items:       contractFor(system),
			},
		},
		Required:         []string{"character", "npcs"},
		PropertyOrdering: []string{"character", "npcs"},
	}
	return def, nil
}

func contractFor(system domain.GameSystem) *genai.Schema {
	switch system {
	case domain.SystemDND5E:
		return dnd5eContract()
	case domain.SystemDaggerheart:
		return daggerheartContract()
	case domain.SystemBlades:
		return bladesContract()
	}
	return nil
}

// DecodeCharacter parses a model payload against the system's contract. The
// decode is strict: unknown fields, shape mismatches, and missing required
// fields all surface as ErrMalformedResponse so the caller can re-prompt
// instead of persisting guessed data.
func DecodeCharacter(system domain.GameSystem, raw []byte) (domain.Character, error) {
	contract := contractFor(system)
	if contract == nil {
		return domain.Character{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedSystem, system)
	}
	if err := checkRequired(contract, raw, ""); err != nil {
		return domain.Character{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	c := domain.Character{System: system}
	switch system {
	case domain.SystemDND5E:
		var v domain.DND5ECharacter
		if err := strictUnmarshal(raw, &v); err != nil {
			return domain.Character{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		c.DND5E = &v
	case domain.SystemDaggerheart:
		var v domain.DaggerheartCharacter
		if err := strictUnmarshal(raw, &v); err != nil {
			return domain.Character{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		c.Daggerheart = &v
	case domain.SystemBlades:
		var v domain.BladesCharacter
		if err := strictUnmarshal(raw, &v); err != nil {
			return domain.Character{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		c.Blades = &v
	default:
		return domain.Character{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedSystem, system)
	}
	if err := c.Validate(); err != nil {
		return domain.Character{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return c, nil
}

func strictUnmarshal(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// checkRequired walks the payload against the contract's Required lists.
// Struct decoding alone cannot catch an absent field whose zero value is
// valid JSON-wise (a missing level decodes as 0), so presence is verified on
// the raw payload before any decode.
func checkRequired(contract *genai.Schema, raw []byte, path string) error {
	if contract == nil {
		return nil
	}
	switch contract.Type {
	case genai.TypeObject:
		if len(contract.Required) == 0 {
			return nil
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return err
		}
		for _, name := range contract.Required {
			value, ok := fields[name]
			if !ok || string(value) == "null" {
				return fmt.Errorf("missing required field %q", fieldPath(path, name))
			}
			if err := checkRequired(contract.Properties[name], value, fieldPath(path, name)); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		if contract.Items == nil {
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		for i, item := range items {
			if err := checkRequired(contract.Items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func fieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
