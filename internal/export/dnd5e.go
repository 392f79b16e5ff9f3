package export

import (
	"fmt"
	"strings"

	"github.com/rowan/character-forge/internal/domain"
)

func renderDND5E(stored *domain.StoredCharacter, c *domain.DND5ECharacter) string {
	var b strings.Builder

	frontmatter(&b, [][2]string{
		{"name", c.Name},
		{"system", string(stored.System)},
		{"race", c.Race},
		{"class", c.Class},
		{"level", fmt.Sprintf("%d", c.Level)},
	})

	fmt.Fprintf(&b, "\n# %s\n\n", c.Name)
	fmt.Fprintf(&b, "Level %d %s %s, %s, %s\n", c.Level, c.Race, c.Class, c.Background, c.Alignment)

	b.WriteString("\n## Vitals\n\n")
	b.WriteString("| HP | AC | Speed |\n")
	b.WriteString("| --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %d | %d | %d ft. |\n", c.HitPoints, c.ArmorClass, c.Speed)

	b.WriteString("\n## Ability Scores\n\n")
	b.WriteString("| STR | DEX | CON | INT | WIS | CHA |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %d |\n",
		c.Stats.Strength, c.Stats.Dexterity, c.Stats.Constitution,
		c.Stats.Intelligence, c.Stats.Wisdom, c.Stats.Charisma)

	bulletSection(&b, "Skills", c.Skills)

	b.WriteString("\n## Attacks\n\n")
	if len(c.Attacks) == 0 {
		fmt.Fprintf(&b, "- %s\n", blankSlot)
	}
	for _, a := range c.Attacks {
		fmt.Fprintf(&b, "- %s: %s to hit, %s\n", a.Name, a.Bonus, a.Damage)
	}

	sharedSections(&b, c.SharedTraits, "Equipment")

	return b.String()
}
