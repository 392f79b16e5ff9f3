// Package export renders stored characters into self-contained markdown
// documents with a frontmatter block. Rendering is pure: no I/O, no
// mutation of the input record. Delivery of the text is the caller's concern.
package export

import (
	"fmt"
	"strings"

	"github.com/rowan/character-forge/internal/domain"
)

// blankSlot is rendered for empty optional display text (e.g. an unmarked
// harm level) so the document keeps a fixed line structure for downstream
// parsing and diffing.
const blankSlot = "(none)"

// Render produces the markdown document for a stored character. An
// unrecognized system tag means the record's integrity was violated upstream;
// it surfaces as an error, never a best-guess layout.
func Render(stored *domain.StoredCharacter) (string, error) {
	character, err := stored.Character()
	if err != nil {
		return "", err
	}

	switch character.System {
	case domain.SystemDND5E:
		return renderDND5E(stored, character.DND5E), nil
	case domain.SystemDaggerheart:
		return renderDaggerheart(stored, character.Daggerheart), nil
	case domain.SystemBlades:
		return renderBlades(stored, character.Blades), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedSystem, character.System)
}

// frontmatter emits the identifying metadata block. Pairs render in the given
// order so exports diff cleanly.
func frontmatter(b *strings.Builder, pairs [][2]string) {
	b.WriteString("---\n")
	for _, p := range pairs {
		fmt.Fprintf(b, "%s: %s\n", p[0], p[1])
	}
	b.WriteString("---\n")
}

// bulletSection writes a heading plus one bullet per entry, preserving the
// stored order. An empty list still gets its heading with a blank placeholder.
func bulletSection(b *strings.Builder, heading string, entries []string) {
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	if len(entries) == 0 {
		fmt.Fprintf(b, "- %s\n", blankSlot)
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(b, "- %s\n", entry)
	}
}

func sharedSections(b *strings.Builder, shared domain.SharedTraits, equipmentHeading string) {
	bulletSection(b, "Appearance", shared.Appearance)
	bulletSection(b, "Personality", shared.Personality)
	bulletSection(b, "Backstory", shared.Backstory)
	bulletSection(b, equipmentHeading, shared.Equipment)
}

func orBlank(s string) string {
	if s == "" {
		return blankSlot
	}
	return s
}
