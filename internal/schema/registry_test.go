package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/schema"
)

func TestFor_AllSystems(t *testing.T) {
	for _, system := range domain.GameSystems {
		def, err := schema.For(system)
		require.NoError(t, err, "system %s", system)
		assert.Equal(t, system, def.System)
		assert.NotEmpty(t, def.DisplayName)
		require.NotNil(t, def.Contract)
		assert.NotEmpty(t, def.Contract.Properties)
		assert.NotEmpty(t, def.Contract.Required)
	}
}

func TestFor_UnknownSystem(t *testing.T) {
	_, err := schema.For(domain.GameSystem("shadowrun"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedSystem)
}

func TestFor_SharedFieldsIdenticalAcrossSystems(t *testing.T) {
	reference, err := schema.For(domain.SystemDND5E)
	require.NoError(t, err)

	for _, system := range domain.GameSystems {
		def, err := schema.For(system)
		require.NoError(t, err)

		for _, field := range schema.SharedFieldNames {
			got, ok := def.Contract.Properties[field]
			require.True(t, ok, "system %s missing shared field %s", system, field)
			assert.Equal(t, reference.Contract.Properties[field], got,
				"system %s shared field %s diverges", system, field)
			assert.Contains(t, def.Contract.Required, field,
				"system %s does not require shared field %s", system, field)
		}
	}
}

func TestGenerationContract_WrapsNPCs(t *testing.T) {
	def, err := schema.GenerationContract(domain.SystemBlades, 2)
	require.NoError(t, err)

	require.Contains(t, def.Contract.Properties, "character")
	require.Contains(t, def.Contract.Properties, "npcs")
	assert.ElementsMatch(t, []string{"character", "npcs"}, def.Contract.Required)

	base, err := schema.For(domain.SystemBlades)
	require.NoError(t, err)
	assert.Equal(t, base.Contract, def.Contract.Properties["character"])
	assert.Equal(t, base.Contract, def.Contract.Properties["npcs"].Items)
}

func TestGenerationContract_ZeroNPCsIsBaseContract(t *testing.T) {
	def, err := schema.GenerationContract(domain.SystemDND5E, 0)
	require.NoError(t, err)

	base, err := schema.For(domain.SystemDND5E)
	require.NoError(t, err)
	assert.Equal(t, base.Contract, def.Contract)
}

func TestDecodeCharacter(t *testing.T) {
	tests := []struct {
		name    string
		system  domain.GameSystem
		payload string
		wantErr error
	}{
		{
			name:   "valid dnd5e",
			system: domain.SystemDND5E,
			payload: `{"name":"Kargath","race":"Half-Orc","class":"Barbarian","level":3,
				"background":"Outlander","alignment":"Chaotic Good",
				"stats":{"strength":18,"dexterity":12,"constitution":16,"intelligence":8,"wisdom":10,"charisma":10},
				"hitPoints":32,"armorClass":13,"speed":30,"skills":["Athletics"],
				"attacks":[{"name":"Greataxe","bonus":"+5","damage":"1d12+3 slashing"}],
				"appearance":["Tall"],"personality":["Stoic"],"backstory":["Exiled"],"equipment":["Bedroll"]}`,
		},
		{
			name:    "not json",
			system:  domain.SystemDND5E,
			payload: `I am sorry, I cannot do that.`,
			wantErr: domain.ErrMalformedResponse,
		},
		{
			name:   "unknown field rejected",
			system: domain.SystemDND5E,
			payload: `{"name":"Kargath","race":"Half-Orc","class":"Barbarian","level":3,
				"background":"Outlander","alignment":"Chaotic Good",
				"stats":{"strength":18,"dexterity":12,"constitution":16,"intelligence":8,"wisdom":10,"charisma":10},
				"hitPoints":32,"armorClass":13,"speed":30,"skills":[],"attacks":[],"hitDice":"1d12",
				"appearance":[],"personality":[],"backstory":[],"equipment":[]}`,
			wantErr: domain.ErrMalformedResponse,
		},
		{
			name:    "missing required field",
			system:  domain.SystemDaggerheart,
			payload: `{"name":"Wrenna"}`,
			wantErr: domain.ErrMalformedResponse,
		},
		{
			name:    "unknown system",
			system:  domain.GameSystem("shadowrun"),
			payload: `{}`,
			wantErr: domain.ErrUnsupportedSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			character, err := schema.DecodeCharacter(tt.system, []byte(tt.payload))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.system, character.System)
			assert.NoError(t, character.Validate())
		})
	}
}

// A payload that only fills the narrative fields must be rejected, not
// decoded into a character whose numeric fields silently read as zero.
func TestDecodeCharacter_PartialPayloadRejected(t *testing.T) {
	payload := `{"name":"Kargath","race":"Half-Orc","class":"Barbarian",
		"appearance":["Tall"],"personality":["Stoic"],"backstory":["Exiled"],"equipment":["Bedroll"]}`

	_, err := schema.DecodeCharacter(domain.SystemDND5E, []byte(payload))
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "missing required field")
}

func TestDecodeCharacter_MissingNumericFieldRejected(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name: "level absent",
			payload: `{"name":"Kargath","race":"Half-Orc","class":"Barbarian",
				"background":"Outlander","alignment":"Chaotic Good",
				"stats":{"strength":18,"dexterity":12,"constitution":16,"intelligence":8,"wisdom":10,"charisma":10},
				"hitPoints":32,"armorClass":13,"speed":30,"skills":[],"attacks":[],
				"appearance":[],"personality":[],"backstory":[],"equipment":[]}`,
			want: `"level"`,
		},
		{
			name: "ability score absent inside stats",
			payload: `{"name":"Kargath","race":"Half-Orc","class":"Barbarian","level":3,
				"background":"Outlander","alignment":"Chaotic Good",
				"stats":{"dexterity":12,"constitution":16,"intelligence":8,"wisdom":10,"charisma":10},
				"hitPoints":32,"armorClass":13,"speed":30,"skills":[],"attacks":[],
				"appearance":[],"personality":[],"backstory":[],"equipment":[]}`,
			want: `"stats.strength"`,
		},
		{
			name: "null counts as absent",
			payload: `{"name":"Kargath","race":"Half-Orc","class":"Barbarian","level":3,
				"background":"Outlander","alignment":"Chaotic Good",
				"stats":{"strength":18,"dexterity":12,"constitution":16,"intelligence":8,"wisdom":10,"charisma":10},
				"hitPoints":null,"armorClass":13,"speed":30,"skills":[],"attacks":[],
				"appearance":[],"personality":[],"backstory":[],"equipment":[]}`,
			want: `"hitPoints"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.DecodeCharacter(domain.SystemDND5E, []byte(tt.payload))
			require.ErrorIs(t, err, domain.ErrMalformedResponse)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeCharacter_PopulatesStats(t *testing.T) {
	payload := `{"name":"Kargath","race":"Half-Orc","class":"Barbarian","level":3,
		"background":"Outlander","alignment":"Chaotic Good",
		"stats":{"strength":18,"dexterity":12,"constitution":16,"intelligence":8,"wisdom":10,"charisma":10},
		"hitPoints":32,"armorClass":13,"speed":30,"skills":[],"attacks":[],
		"appearance":[],"personality":[],"backstory":[],"equipment":[]}`

	character, err := schema.DecodeCharacter(domain.SystemDND5E, []byte(payload))
	require.NoError(t, err)
	require.NotNil(t, character.DND5E)

	stats := character.DND5E.Stats
	assert.Equal(t, 18, stats.Strength)
	assert.Equal(t, 12, stats.Dexterity)
	assert.Equal(t, 16, stats.Constitution)
	assert.Equal(t, 8, stats.Intelligence)
	assert.Equal(t, 10, stats.Wisdom)
	assert.Equal(t, 10, stats.Charisma)
}
