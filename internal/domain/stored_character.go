package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StoredCharacter is the persisted wrapper around a generated Character.
// Data holds the JSON payload of the variant matching System; Name is
// denormalized from the payload so search can hit it without deserializing
// every row. ID and CreatedAt are immutable after creation.
type StoredCharacter struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	System    GameSystem     `json:"system" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null;index"`
	Prompt    string         `json:"prompt" gorm:"not null"`
	IsNpc     bool           `json:"isNpc" gorm:"not null;default:false;index"`
	Data      datatypes.JSON `json:"data" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewStoredCharacter packages a validated Character for persistence.
// The repository assigns ID and timestamps on create.
func NewStoredCharacter(character Character, prompt string, isNpc bool) (*StoredCharacter, error) {
	if err := character.Validate(); err != nil {
		return nil, err
	}
	payload, err := marshalVariant(character)
	if err != nil {
		return nil, err
	}
	return &StoredCharacter{
		System: character.System,
		Name:   character.Name(),
		Prompt: prompt,
		IsNpc:  isNpc,
		Data:   payload,
	}, nil
}

// Character reconstructs the tagged union from the stored payload.
func (s *StoredCharacter) Character() (Character, error) {
	c := Character{System: s.System}
	switch s.System {
	case SystemDND5E:
		var v DND5ECharacter
		if err := json.Unmarshal(s.Data, &v); err != nil {
			return Character{}, fmt.Errorf("decode stored dnd5e character %s: %w", s.ID, err)
		}
		c.DND5E = &v
	case SystemDaggerheart:
		var v DaggerheartCharacter
		if err := json.Unmarshal(s.Data, &v); err != nil {
			return Character{}, fmt.Errorf("decode stored daggerheart character %s: %w", s.ID, err)
		}
		c.Daggerheart = &v
	case SystemBlades:
		var v BladesCharacter
		if err := json.Unmarshal(s.Data, &v); err != nil {
			return Character{}, fmt.Errorf("decode stored blades character %s: %w", s.ID, err)
		}
		c.Blades = &v
	default:
		return Character{}, fmt.Errorf("%w: %q", ErrUnsupportedSystem, s.System)
	}
	return c, nil
}

func marshalVariant(c Character) (datatypes.JSON, error) {
	var v any
	switch c.System {
	case SystemDND5E:
		v = c.DND5E
	case SystemDaggerheart:
		v = c.Daggerheart
	case SystemBlades:
		v = c.Blades
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSystem, c.System)
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s character: %w", c.System, err)
	}
	return datatypes.JSON(payload), nil
}
