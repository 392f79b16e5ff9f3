package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowan/character-forge/internal/domain"
)

func validBlades() *domain.BladesCharacter {
	return &domain.BladesCharacter{
		Name:     "Silas Crowe",
		Playbook: "Cutter",
	}
}

func validDND5E() *domain.DND5ECharacter {
	return &domain.DND5ECharacter{
		Name:  "Kargath",
		Race:  "Half-Orc",
		Class: "Barbarian",
	}
}

func TestParseGameSystem(t *testing.T) {
	for _, s := range []string{"dnd5e", "daggerheart", "blades"} {
		system, err := domain.ParseGameSystem(s)
		require.NoError(t, err)
		assert.Equal(t, domain.GameSystem(s), system)
	}

	_, err := domain.ParseGameSystem("gurps")
	assert.ErrorIs(t, err, domain.ErrUnsupportedSystem)

	_, err = domain.ParseGameSystem("")
	assert.ErrorIs(t, err, domain.ErrUnsupportedSystem)
}

func TestCharacterValidate(t *testing.T) {
	tests := []struct {
		name      string
		character domain.Character
		wantErr   bool
	}{
		{
			name:      "valid blades",
			character: domain.Character{System: domain.SystemBlades, Blades: validBlades()},
		},
		{
			name:      "tag does not match variant",
			character: domain.Character{System: domain.SystemDND5E, Blades: validBlades()},
			wantErr:   true,
		},
		{
			name:      "no variant",
			character: domain.Character{System: domain.SystemDND5E},
			wantErr:   true,
		},
		{
			name: "two variants",
			character: domain.Character{
				System: domain.SystemDND5E,
				DND5E:  validDND5E(),
				Blades: validBlades(),
			},
			wantErr: true,
		},
		{
			name:      "unknown system",
			character: domain.Character{System: "gurps", Blades: validBlades()},
			wantErr:   true,
		},
		{
			name: "missing required field",
			character: domain.Character{
				System: domain.SystemBlades,
				Blades: &domain.BladesCharacter{Name: "Silas Crowe"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.character.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStoredCharacterRoundTrip(t *testing.T) {
	character := domain.Character{System: domain.SystemDND5E, DND5E: validDND5E()}

	stored, err := domain.NewStoredCharacter(character, "a half-orc barbarian", false)
	require.NoError(t, err)
	assert.Equal(t, domain.SystemDND5E, stored.System)
	assert.Equal(t, "Kargath", stored.Name)

	decoded, err := stored.Character()
	require.NoError(t, err)
	require.NotNil(t, decoded.DND5E)
	assert.Equal(t, *character.DND5E, *decoded.DND5E)
	assert.Nil(t, decoded.Blades)
}

func TestNewStoredCharacter_RejectsTagMismatch(t *testing.T) {
	_, err := domain.NewStoredCharacter(domain.Character{
		System: domain.SystemDaggerheart,
		Blades: validBlades(),
	}, "prompt", false)
	assert.Error(t, err)
}
