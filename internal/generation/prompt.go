package generation

import (
	"fmt"
	"strings"
)

// buildInstruction composes the system instruction for a generation call: the
// role preamble for the target game system plus output conventions. The
// structural contract itself travels separately as the response schema.
func buildInstruction(displayName string, npcCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert character creator for %s. ", displayName)
	b.WriteString("Given a short concept, produce a complete, mechanically coherent character. ")
	b.WriteString("Give the character a fitting name. ")
	b.WriteString("For appearance, personality, backstory, and equipment, write 3 to 5 short bullet-point strings each.")
	if npcCount > 0 {
		fmt.Fprintf(&b, " Also create exactly %d supporting non-player characters connected to the main character's story, each as complete as the main character.", npcCount)
	}
	return b.String()
}

func buildPrompt(prompt string) string {
	return fmt.Sprintf("Character concept: %s", prompt)
}
