package export

import (
	"fmt"
	"strings"

	"github.com/rowan/character-forge/internal/domain"
)

func renderDaggerheart(stored *domain.StoredCharacter, c *domain.DaggerheartCharacter) string {
	var b strings.Builder

	frontmatter(&b, [][2]string{
		{"name", c.Name},
		{"system", string(stored.System)},
		{"ancestry", c.Ancestry},
		{"class", c.Class},
		{"level", fmt.Sprintf("%d", c.Level)},
	})

	fmt.Fprintf(&b, "\n# %s\n\n", c.Name)
	fmt.Fprintf(&b, "Level %d %s %s (%s) from the %s community\n",
		c.Level, c.Ancestry, c.Class, c.Subclass, c.Community)

	b.WriteString("\n## Vitals\n\n")
	b.WriteString("| Evasion | HP | Stress | Hope |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n", c.Evasion, c.HitPoints, c.Stress, c.Hope)

	b.WriteString("\n## Traits\n\n")
	b.WriteString("| Agility | Strength | Finesse | Instinct | Presence | Knowledge |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %+d | %+d | %+d | %+d | %+d | %+d |\n",
		c.Traits.Agility, c.Traits.Strength, c.Traits.Finesse,
		c.Traits.Instinct, c.Traits.Presence, c.Traits.Knowledge)

	b.WriteString("\n## Weapons\n\n")
	if len(c.Weapons) == 0 {
		fmt.Fprintf(&b, "- %s\n", blankSlot)
	}
	for _, w := range c.Weapons {
		fmt.Fprintf(&b, "- %s (%s, %s): %s\n", w.Name, w.Trait, w.Range, w.Damage)
	}

	sharedSections(&b, c.SharedTraits, "Equipment")

	return b.String()
}
