package generation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowan/character-forge/internal/domain"
	"github.com/rowan/character-forge/internal/generation"
	"github.com/rowan/character-forge/internal/testutil"
)

func newGenerator(t *testing.T) (*generation.Generator, *testutil.FakeModelClient) {
	t.Helper()
	client := testutil.NewFakeModelClient()
	return generation.NewGenerator(client, zap.NewNop()), client
}

func TestGenerate_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name    string
		system  domain.GameSystem
		prompt  string
		wantErr error
	}{
		{
			name:    "empty prompt",
			system:  domain.SystemDND5E,
			prompt:  "",
			wantErr: domain.ErrEmptyPrompt,
		},
		{
			name:    "whitespace prompt",
			system:  domain.SystemDND5E,
			prompt:  "   ",
			wantErr: domain.ErrEmptyPrompt,
		},
		{
			name:    "unknown system",
			system:  domain.GameSystem("shadowrun"),
			prompt:  "A street samurai",
			wantErr: domain.ErrUnsupportedSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, client := newGenerator(t)

			_, err := gen.Generate(context.Background(), tt.system, tt.prompt)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, generation.IsValidationError(err))
			assert.Zero(t, client.CallCount(), "validation errors must not reach the model")
		})
	}
}

func TestGenerateWithNPCs_InvalidCount(t *testing.T) {
	gen, client := newGenerator(t)

	for _, count := range []int{-1, 4, 10} {
		_, err := gen.GenerateWithNPCs(context.Background(), domain.SystemDND5E, "A wizard", count)
		assert.ErrorIs(t, err, domain.ErrInvalidNPCCount, "count %d", count)
	}
	assert.Zero(t, client.CallCount())
}

func TestGenerate_Success(t *testing.T) {
	gen, client := newGenerator(t)
	client.Respond(testutil.CharacterJSON(t, testutil.DND5ECharacter()))

	character, err := gen.Generate(context.Background(), domain.SystemDND5E,
		"A stoic half-orc barbarian who is afraid of the dark")
	require.NoError(t, err)

	require.NotNil(t, character.DND5E)
	assert.Equal(t, domain.SystemDND5E, character.System)
	assert.NotEmpty(t, character.DND5E.Name)
	assert.NotEmpty(t, character.DND5E.Race)
	assert.NotEmpty(t, character.DND5E.Class)
	assert.NotZero(t, character.DND5E.Stats.Strength)
	assert.NotZero(t, character.DND5E.Stats.Charisma)

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].SystemInstruction, "Dungeons & Dragons 5th Edition")
	assert.Contains(t, calls[0].Prompt, "half-orc barbarian")
	require.NotNil(t, calls[0].Contract)
}

func TestGenerate_MalformedPayload(t *testing.T) {
	gen, client := newGenerator(t)
	client.Respond("I'd be happy to help! Here is your character: Kargath the bold.")

	_, err := gen.Generate(context.Background(), domain.SystemDND5E, "A barbarian")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	assert.False(t, generation.IsValidationError(err))
}

func TestGenerate_ServiceFailure(t *testing.T) {
	gen, client := newGenerator(t)
	client.Fail(errors.New("connection reset"))

	_, err := gen.Generate(context.Background(), domain.SystemBlades, "A cutter")
	assert.ErrorIs(t, err, domain.ErrGenerationService)
}

func TestGenerateWithNPCs_Success(t *testing.T) {
	gen, client := newGenerator(t)
	client.Respond(testutil.NPCEnvelopeJSON(t,
		testutil.BladesCharacter(),
		testutil.BladesCharacter(),
		testutil.BladesCharacter(),
	))

	res, err := gen.GenerateWithNPCs(context.Background(), domain.SystemBlades,
		"A cutter haunted by a ghost", 2)
	require.NoError(t, err)

	assert.Equal(t, domain.SystemBlades, res.Character.System)
	require.Len(t, res.NPCs, 2)
	for _, npc := range res.NPCs {
		assert.NoError(t, npc.Validate())
		assert.Equal(t, domain.SystemBlades, npc.System)
	}
	assert.Equal(t, 1, client.CallCount(), "npc mode is one combined call")
}

func TestGenerateWithNPCs_TooManyNPCsIsMalformed(t *testing.T) {
	gen, client := newGenerator(t)
	c := testutil.DaggerheartCharacter()
	client.Respond(testutil.NPCEnvelopeJSON(t, c, c, c, c, c))

	_, err := gen.GenerateWithNPCs(context.Background(), domain.SystemDaggerheart, "A guardian", 3)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestGenerateWithNPCs_InvalidNPCIsMalformed(t *testing.T) {
	gen, client := newGenerator(t)
	client.Respond(`{"character":` + testutil.CharacterJSON(t, testutil.BladesCharacter()) +
		`,"npcs":[{"name":"Nameless"}]}`)

	_, err := gen.GenerateWithNPCs(context.Background(), domain.SystemBlades, "A cutter", 1)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestGenerate_CacheServesIdenticalRequests(t *testing.T) {
	gen, client := newGenerator(t)
	client.Respond(testutil.CharacterJSON(t, testutil.DND5ECharacter()))

	first, err := gen.Generate(context.Background(), domain.SystemDND5E, "A barbarian")
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), domain.SystemDND5E, "A barbarian")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.CallCount(), "identical request should hit the cache")

	// A different NPC count is a different cache key.
	client.Respond(testutil.NPCEnvelopeJSON(t, testutil.DND5ECharacter()))
	_, err = gen.GenerateWithNPCs(context.Background(), domain.SystemDND5E, "A barbarian", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, client.CallCount())
}

func TestGenerate_ClearCacheForcesRegeneration(t *testing.T) {
	gen, client := newGenerator(t)
	client.Respond(testutil.CharacterJSON(t, testutil.DND5ECharacter()))

	_, err := gen.Generate(context.Background(), domain.SystemDND5E, "A barbarian")
	require.NoError(t, err)

	gen.ClearCache()

	_, err = gen.Generate(context.Background(), domain.SystemDND5E, "A barbarian")
	require.NoError(t, err)
	assert.Equal(t, 2, client.CallCount())
}

func TestGenerate_ErrorsAreNotCached(t *testing.T) {
	gen, client := newGenerator(t)
	client.Fail(errors.New("rate limited"))

	_, err := gen.Generate(context.Background(), domain.SystemDND5E, "A barbarian")
	require.ErrorIs(t, err, domain.ErrGenerationService)

	client.Respond(testutil.CharacterJSON(t, testutil.DND5ECharacter()))
	character, err := gen.Generate(context.Background(), domain.SystemDND5E, "A barbarian")
	require.NoError(t, err, "a failed call must not poison the cache")
	assert.NotEmpty(t, character.Name())
	assert.Equal(t, 2, client.CallCount())
}
