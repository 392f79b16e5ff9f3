package schema

import "google.golang.org/genai"

// sharedProperties returns the narrative fields common to every system. All
// three contracts compose this block so the cross-system fields stay
// structurally identical. A fresh copy is returned each call; contracts never
// share mutable schema nodes.
func sharedProperties() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"appearance":  bulletList("Physical appearance details, 3 to 5 bullet points."),
		"personality": bulletList("Personality traits and drives, 3 to 5 bullet points."),
		"backstory":   bulletList("Backstory beats, 3 to 5 bullet points."),
		"equipment":   bulletList("Carried equipment, 3 to 5 bullet points."),
	}
}

// SharedFieldNames lists the composed cross-system fields in contract order.
var SharedFieldNames = []string{"appearance", "personality", "backstory", "equipment"}

func bulletList(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: description,
		Items:       &genai.Schema{Type: genai.TypeString},
	}
}

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func integer(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: description}
}

func object(properties map[string]*genai.Schema, required []string) *genai.Schema {
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

func dnd5eContract() *genai.Schema {
	props := map[string]*genai.Schema{
		"name":       str("Character name."),
		"race":       str("Character race, e.g. Half-Orc."),
		"class":      str("Character class, e.g. Barbarian."),
		"level":      integer("Character level, 1-20."),
		"background": str("Background, e.g. Outlander."),
		"alignment":  str("Alignment, e.g. Chaotic Good."),
		"stats": object(map[string]*genai.Schema{
			"strength":     integer("Strength score, 3-20."),
			"dexterity":    integer("Dexterity score, 3-20."),
			"constitution": integer("Constitution score, 3-20."),
			"intelligence": integer("Intelligence score, 3-20."),
			"wisdom":       integer("Wisdom score, 3-20."),
			"charisma":     integer("Charisma score, 3-20."),
		}, []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}),
		"hitPoints":  integer("Maximum hit points."),
		"armorClass": integer("Armor class."),
		"speed":      integer("Speed in feet."),
		"skills":     bulletList("Proficient skills."),
		"attacks": {
			Type: genai.TypeArray,
			Items: object(map[string]*genai.Schema{
				"name":   str("Attack name."),
				"bonus":  str("Attack bonus, e.g. +5."),
				"damage": str("Damage, e.g. 1d12+3 slashing."),
			}, []string{"name", "bonus", "damage"}),
		},
	}
	required := []string{
		"name", "race", "class", "level", "background", "alignment",
		"stats", "hitPoints", "armorClass", "speed", "skills", "attacks",
	}
	return withShared(props, required)
}

func daggerheartContract() *genai.Schema {
	props := map[string]*genai.Schema{
		"name":      str("Character name."),
		"ancestry":  str("Ancestry, e.g. Galapa."),
		"community": str("Community, e.g. Ridgeborne."),
		"class":     str("Class, e.g. Guardian."),
		"subclass":  str("Subclass, e.g. Stalwart."),
		"level":     integer("Character level."),
		"traits": object(map[string]*genai.Schema{
			"agility":   integer("Agility modifier, -1 to +2."),
			"strength":  integer("Strength modifier, -1 to +2."),
			"finesse":   integer("Finesse modifier, -1 to +2."),
			"instinct":  integer("Instinct modifier, -1 to +2."),
			"presence":  integer("Presence modifier, -1 to +2."),
			"knowledge": integer("Knowledge modifier, -1 to +2."),
		}, []string{"agility", "strength", "finesse", "instinct", "presence", "knowledge"}),
		"evasion":   integer("Evasion score."),
		"hitPoints": integer("Hit point slots."),
		"stress":    integer("Stress slots."),
		"hope":      integer("Starting hope."),
		"weapons": {
			Type: genai.TypeArray,
			Items: object(map[string]*genai.Schema{
				"name":   str("Weapon name."),
				"trait":  str("Trait used, e.g. Strength."),
				"range":  str("Range band, e.g. Melee."),
				"damage": str("Damage, e.g. d10+3 phy."),
			}, []string{"name", "trait", "range", "damage"}),
		},
	}
	required := []string{
		"name", "ancestry", "community", "class", "subclass", "level",
		"traits", "evasion", "hitPoints", "stress", "hope", "weapons",
	}
	return withShared(props, required)
}

func bladesContract() *genai.Schema {
	props := map[string]*genai.Schema{
		"name":       str("Character name."),
		"playbook":   str("Playbook, e.g. Cutter."),
		"heritage":   str("Heritage, e.g. Akorosi."),
		"background": str("Background, e.g. Labor."),
		"vice":       str("Vice, e.g. Gambling."),
		"stress":     integer("Current stress, usually 0 for a fresh character."),
		"actionRatings": object(map[string]*genai.Schema{
			"hunt":     integer("Hunt rating, 0-4."),
			"study":    integer("Study rating, 0-4."),
			"survey":   integer("Survey rating, 0-4."),
			"tinker":   integer("Tinker rating, 0-4."),
			"finesse":  integer("Finesse rating, 0-4."),
			"prowl":    integer("Prowl rating, 0-4."),
			"skirmish": integer("Skirmish rating, 0-4."),
			"wreck":    integer("Wreck rating, 0-4."),
			"attune":   integer("Attune rating, 0-4."),
			"command":  integer("Command rating, 0-4."),
			"consort":  integer("Consort rating, 0-4."),
			"sway":     integer("Sway rating, 0-4."),
		}, []string{
			"hunt", "study", "survey", "tinker", "finesse", "prowl",
			"skirmish", "wreck", "attune", "command", "consort", "sway",
		}),
		"harm": object(map[string]*genai.Schema{
			"level1": {
				Type:        genai.TypeArray,
				Description: "Two level-1 harm slots; empty strings when unmarked.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"level2": {
				Type:        genai.TypeArray,
				Description: "Two level-2 harm slots; empty strings when unmarked.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"level3": str("Level-3 harm slot; empty string when unmarked."),
		}, []string{"level1", "level2", "level3"}),
		"gear": {
			Type: genai.TypeArray,
			Items: object(map[string]*genai.Schema{
				"name": str("Gear item name."),
				"load": integer("Load cost of the item."),
			}, []string{"name", "load"}),
		},
	}
	required := []string{
		"name", "playbook", "heritage", "background", "vice",
		"stress", "actionRatings", "harm", "gear",
	}
	return withShared(props, required)
}

func withShared(props map[string]*genai.Schema, required []string) *genai.Schema {
	for name, s := range sharedProperties() {
		props[name] = s
	}
	required = append(required, SharedFieldNames...)
	return object(props, required)
}
