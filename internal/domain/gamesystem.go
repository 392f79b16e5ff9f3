package domain

import "fmt"

type GameSystem string

const (
	SystemDND5E       GameSystem = "dnd5e"
	SystemDaggerheart GameSystem = "daggerheart"
	SystemBlades      GameSystem = "blades"
)

// GameSystems lists every supported system. The set is fixed at compile time;
// adding a system means adding a Character variant and a schema definition.
var GameSystems = []GameSystem{SystemDND5E, SystemDaggerheart, SystemBlades}

func ParseGameSystem(s string) (GameSystem, error) {
	switch GameSystem(s) {
	case SystemDND5E, SystemDaggerheart, SystemBlades:
		return GameSystem(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSystem, s)
}

func (g GameSystem) Valid() bool {
	switch g {
	case SystemDND5E, SystemDaggerheart, SystemBlades:
		return true
	}
	return false
}

// DisplayName is the human-readable system name used in generation
// instructions and exported documents.
func (g GameSystem) DisplayName() string {
	switch g {
	case SystemDND5E:
		return "Dungeons & Dragons 5th Edition"
	case SystemDaggerheart:
		return "Daggerheart"
	case SystemBlades:
		return "Blades in the Dark"
	}
	return string(g)
}
