package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/gorm"

	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/repository/gormstore"
)

// DND5ECharacter returns a fully-populated sample character.
func DND5ECharacter() domain.Character {
	return domain.Character{
		System: domain.SystemDND5E,
		DND5E: &domain.DND5ECharacter{
			Name:       "Kargath Ironhide",
			Race:       "Half-Orc",
			Class:      "Barbarian",
			Level:      3,
			Background: "Outlander",
			Alignment:  "Chaotic Good",
			Stats: domain.AbilityScores{
				Strength:     18,
				Dexterity:    12,
				Constitution: 16,
				Intelligence: 8,
				Wisdom:       10,
				Charisma:     10,
			},
			HitPoints:  32,
			ArmorClass: 13,
			Speed:      30,
			Skills:     []string{"Athletics", "Intimidation", "Survival"},
			Attacks: []domain.Attack{
				{Name: "Greataxe", Bonus: "+5", Damage: "1d12+3 slashing"},
				{Name: "Javelin", Bonus: "+5", Damage: "1d6+3 piercing"},
			},
			SharedTraits: sampleShared(),
		},
	}
}

func DaggerheartCharacter() domain.Character {
	return domain.Character{
		System: domain.SystemDaggerheart,
		Daggerheart: &domain.DaggerheartCharacter{
			Name:      "Wrenna Thistledown",
			Ancestry:  "Ribbet",
			Community: "Ridgeborne",
			Class:     "Guardian",
			Subclass:  "Stalwart",
			Level:     1,
			Traits: domain.DaggerheartTraits{
				Agility:   1,
				Strength:  2,
				Finesse:   0,
				Instinct:  1,
				Presence:  0,
				Knowledge: -1,
			},
			Evasion:   9,
			HitPoints: 7,
			Stress:    6,
			Hope:      2,
			Weapons: []domain.DaggerheartWeapon{
				{Name: "Warhammer", Trait: "Strength", Range: "Melee", Damage: "d12+3 phy"},
			},
			SharedTraits: sampleShared(),
		},
	}
}

func BladesCharacter() domain.Character {
	return domain.Character{
		System: domain.SystemBlades,
		Blades: &domain.BladesCharacter{
			Name:       "Silas Crowe",
			Playbook:   "Cutter",
			Heritage:   "Akorosi",
			Background: "Labor",
			Vice:       "Gambling",
			Stress:     0,
			Actions: domain.ActionRatings{
				Hunt: 1, Skirmish: 2, Wreck: 1, Command: 2, Prowl: 1,
			},
			Harm: domain.HarmTrack{
				Level1: []string{"Bruised ribs", ""},
				Level2: []string{"", ""},
				Level3: "",
			},
			Gear: []domain.GearItem{
				{Name: "Fine hand weapon", Load: 1},
				{Name: "Armor", Load: 2},
			},
			SharedTraits: sampleShared(),
		},
	}
}

func sampleShared() domain.SharedTraits {
	return domain.SharedTraits{
		Appearance:  []string{"Towering frame", "Ritual scars across both arms", "Wolf-pelt cloak"},
		Personality: []string{"Slow to speak, quick to act", "Protective of the small", "Fears the dark"},
		Backstory:   []string{"Raised by a mountain clan", "Exiled after a blood feud", "Seeks a worthy death"},
		Equipment:   []string{"Bedroll", "Hunting trap", "Waterskin"},
	}
}

// CharacterJSON marshals a character's variant payload the way the
// generation service would emit it.
func CharacterJSON(t *testing.T, c domain.Character) string {
	t.Helper()

	var v any
	switch c.System {
	case domain.SystemDND5E:
		v = c.DND5E
	case domain.SystemDaggerheart:
		v = c.Daggerheart
	case domain.SystemBlades:
		v = c.Blades
	default:
		t.Fatalf("unknown system %q", c.System)
	}
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal character: %v", err)
	}
	return string(payload)
}

// NPCEnvelopeJSON wraps a character and NPCs the way the NPC-inclusive
// contract expects.
func NPCEnvelopeJSON(t *testing.T, character domain.Character, npcs ...domain.Character) string {
	t.Helper()

	npcPayloads := make([]json.RawMessage, len(npcs))
	for i, npc := range npcs {
		npcPayloads[i] = json.RawMessage(CharacterJSON(t, npc))
	}
	envelope := map[string]any{
		"character": json.RawMessage(CharacterJSON(t, character)),
		"npcs":      npcPayloads,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("failed to marshal npc envelope: %v", err)
	}
	return string(payload)
}

// CreateStoredCharacter persists a character through the real repository.
func CreateStoredCharacter(t *testing.T, db *gorm.DB, character domain.Character, prompt string, isNpc bool) *domain.StoredCharacter {
	t.Helper()

	stored, err := domain.NewStoredCharacter(character, prompt, isNpc)
	if err != nil {
		t.Fatalf("failed to build stored character: %v", err)
	}
	repo := gormstore.NewCharacterRepository(db)
	if err := repo.Create(context.Background(), stored); err != nil {
		t.Fatalf("failed to persist character: %v", err)
	}
	return stored
}
