package domain

import (
	"fmt"
	"strings"
)

// SharedTraits holds the narrative fields every system's character carries.
// Each list is conventionally 3-5 entries; the count is an instruction to the
// generation model, not a validated invariant.
type SharedTraits struct {
	Appearance  []string `json:"appearance"`
	Personality []string `json:"personality"`
	Backstory   []string `json:"backstory"`
	Equipment   []string `json:"equipment"`
}

type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

type Attack struct {
	Name   string `json:"name"`
	Bonus  string `json:"bonus"`
	Damage string `json:"damage"`
}

type DND5ECharacter struct {
	Name       string        `json:"name"`
	Race       string        `json:"race"`
	Class      string        `json:"class"`
	Level      int           `json:"level"`
	Background string        `json:"background"`
	Alignment  string        `json:"alignment"`
	Stats      AbilityScores `json:"stats"`
	HitPoints  int           `json:"hitPoints"`
	ArmorClass int           `json:"armorClass"`
	Speed      int           `json:"speed"`
	Skills     []string      `json:"skills"`
	Attacks    []Attack      `json:"attacks"`
	SharedTraits
}

type DaggerheartTraits struct {
	Agility   int `json:"agility"`
	Strength  int `json:"strength"`
	Finesse   int `json:"finesse"`
	Instinct  int `json:"instinct"`
	Presence  int `json:"presence"`
	Knowledge int `json:"knowledge"`
}

type DaggerheartWeapon struct {
	Name   string `json:"name"`
	Trait  string `json:"trait"`
	Range  string `json:"range"`
	Damage string `json:"damage"`
}

type DaggerheartCharacter struct {
	Name      string              `json:"name"`
	Ancestry  string              `json:"ancestry"`
	Community string              `json:"community"`
	Class     string              `json:"class"`
	Subclass  string              `json:"subclass"`
	Level     int                 `json:"level"`
	Traits    DaggerheartTraits   `json:"traits"`
	Evasion   int                 `json:"evasion"`
	HitPoints int                 `json:"hitPoints"`
	Stress    int                 `json:"stress"`
	Hope      int                 `json:"hope"`
	Weapons   []DaggerheartWeapon `json:"weapons"`
	SharedTraits
}

type ActionRatings struct {
	Hunt     int `json:"hunt"`
	Study    int `json:"study"`
	Survey   int `json:"survey"`
	Tinker   int `json:"tinker"`
	Finesse  int `json:"finesse"`
	Prowl    int `json:"prowl"`
	Skirmish int `json:"skirmish"`
	Wreck    int `json:"wreck"`
	Attune   int `json:"attune"`
	Command  int `json:"command"`
	Consort  int `json:"consort"`
	Sway     int `json:"sway"`
}

// HarmTrack mirrors the Blades harm grid: two level-1 slots, two level-2
// slots, one level-3 slot. Empty strings are unmarked slots.
type HarmTrack struct {
	Level1 []string `json:"level1"`
	Level2 []string `json:"level2"`
	Level3 string   `json:"level3"`
}

type GearItem struct {
	Name string `json:"name"`
	Load int    `json:"load"`
}

type BladesCharacter struct {
	Name       string        `json:"name"`
	Playbook   string        `json:"playbook"`
	Heritage   string        `json:"heritage"`
	Background string        `json:"background"`
	Vice       string        `json:"vice"`
	Stress     int           `json:"stress"`
	Actions    ActionRatings `json:"actionRatings"`
	Harm       HarmTrack     `json:"harm"`
	Gear       []GearItem    `json:"gear"`
	SharedTraits
}

// Character is a tagged union over the supported systems. Exactly one variant
// pointer is set, and it must match System. Consumers switch on System
// exhaustively; probing variant pointers to infer the system is a bug.
type Character struct {
	System      GameSystem            `json:"system"`
	DND5E       *DND5ECharacter       `json:"dnd5e,omitempty"`
	Daggerheart *DaggerheartCharacter `json:"daggerheart,omitempty"`
	Blades      *BladesCharacter      `json:"blades,omitempty"`
}

// Name returns the character's display name for the active variant.
func (c Character) Name() string {
	switch c.System {
	case SystemDND5E:
		if c.DND5E != nil {
			return c.DND5E.Name
		}
	case SystemDaggerheart:
		if c.Daggerheart != nil {
			return c.Daggerheart.Name
		}
	case SystemBlades:
		if c.Blades != nil {
			return c.Blades.Name
		}
	}
	return ""
}

// Shared returns the cross-system narrative block for the active variant.
func (c Character) Shared() SharedTraits {
	switch c.System {
	case SystemDND5E:
		if c.DND5E != nil {
			return c.DND5E.SharedTraits
		}
	case SystemDaggerheart:
		if c.Daggerheart != nil {
			return c.Daggerheart.SharedTraits
		}
	case SystemBlades:
		if c.Blades != nil {
			return c.Blades.SharedTraits
		}
	}
	return SharedTraits{}
}

// Validate checks that the tag matches the populated variant and that the
// variant's required fields are present. A mismatch is rejected here, at the
// boundary, rather than coerced.
func (c Character) Validate() error {
	if !c.System.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedSystem, c.System)
	}
	set := 0
	if c.DND5E != nil {
		set++
	}
	if c.Daggerheart != nil {
		set++
	}
	if c.Blades != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("character must have exactly one variant, got %d", set)
	}

	switch c.System {
	case SystemDND5E:
		if c.DND5E == nil {
			return fmt.Errorf("system %s does not match populated variant", c.System)
		}
		return c.DND5E.validate()
	case SystemDaggerheart:
		if c.Daggerheart == nil {
			return fmt.Errorf("system %s does not match populated variant", c.System)
		}
		return c.Daggerheart.validate()
	case SystemBlades:
		if c.Blades == nil {
			return fmt.Errorf("system %s does not match populated variant", c.System)
		}
		return c.Blades.validate()
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedSystem, c.System)
}

func (c DND5ECharacter) validate() error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Race == "" {
		missing = append(missing, "race")
	}
	if c.Class == "" {
		missing = append(missing, "class")
	}
	if len(missing) > 0 {
		return fmt.Errorf("dnd5e character missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c DaggerheartCharacter) validate() error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Ancestry == "" {
		missing = append(missing, "ancestry")
	}
	if c.Class == "" {
		missing = append(missing, "class")
	}
	if len(missing) > 0 {
		return fmt.Errorf("daggerheart character missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c BladesCharacter) validate() error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Playbook == "" {
		missing = append(missing, "playbook")
	}
	if len(missing) > 0 {
		return fmt.Errorf("blades character missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
