package export

import (
	"fmt"
	"strings"

	"github.com/rowan/character-forge/internal/domain"
)

func renderBlades(stored *domain.StoredCharacter, c *domain.BladesCharacter) string {
	var b strings.Builder

	frontmatter(&b, [][2]string{
		{"name", c.Name},
		{"system", string(stored.System)},
		{"playbook", c.Playbook},
		{"heritage", c.Heritage},
	})

	fmt.Fprintf(&b, "\n# %s\n\n", c.Name)
	fmt.Fprintf(&b, "%s, %s heritage, %s background, vice: %s\n",
		c.Playbook, c.Heritage, c.Background, c.Vice)

	b.WriteString("\n## Stress\n\n")
	fmt.Fprintf(&b, "%d / 9\n", c.Stress)

	b.WriteString("\n## Action Ratings\n\n")
	b.WriteString("| Insight | | Prowess | | Resolve | |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| Hunt | %d | Finesse | %d | Attune | %d |\n", c.Actions.Hunt, c.Actions.Finesse, c.Actions.Attune)
	fmt.Fprintf(&b, "| Study | %d | Prowl | %d | Command | %d |\n", c.Actions.Study, c.Actions.Prowl, c.Actions.Command)
	fmt.Fprintf(&b, "| Survey | %d | Skirmish | %d | Consort | %d |\n", c.Actions.Survey, c.Actions.Skirmish, c.Actions.Consort)
	fmt.Fprintf(&b, "| Tinker | %d | Wreck | %d | Sway | %d |\n", c.Actions.Tinker, c.Actions.Wreck, c.Actions.Sway)

	// Harm lines always render all five slots so the document shape is fixed.
	b.WriteString("\n## Harm\n\n")
	fmt.Fprintf(&b, "- Level 3: %s\n", orBlank(c.Harm.Level3))
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&b, "- Level 2: %s\n", orBlank(harmSlot(c.Harm.Level2, i)))
	}
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&b, "- Level 1: %s\n", orBlank(harmSlot(c.Harm.Level1, i)))
	}

	b.WriteString("\n## Gear\n\n")
	if len(c.Gear) == 0 {
		fmt.Fprintf(&b, "- %s\n", blankSlot)
	}
	for _, g := range c.Gear {
		fmt.Fprintf(&b, "- %s (%d load)\n", g.Name, g.Load)
	}

	sharedSections(&b, c.SharedTraits, "Equipment")

	return b.String()
}

func harmSlot(slots []string, i int) string {
	if i >= len(slots) {
		return ""
	}
	return slots[i]
}
