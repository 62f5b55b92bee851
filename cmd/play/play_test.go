package play

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psucodervn/blackjack/internal/game"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := bytes.NewBuffer(nil)
	cmd := Command()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlay_Rounds(t *testing.T) {
	out, err := execute(t, strings.Repeat("s\n", 3), "--seed", "7", "--rounds", "3", "--name", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Round 1 ---")
	assert.Contains(t, out, "--- Round 3 ---")
	assert.Contains(t, out, "Alice was dealt")
	assert.Contains(t, out, "Session summary")
	assert.Contains(t, out, "Played: 3")
}

func TestPlay_SameSeedSameOutput(t *testing.T) {
	a, err := execute(t, "s\n", "--seed", "11")
	require.NoError(t, err)
	b, err := execute(t, "s\n", "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlay_InputClosed(t *testing.T) {
	out, err := execute(t, "", "--seed", "3", "--rounds", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Round 1 ---")
}

func TestPlay_InvalidFlags(t *testing.T) {
	_, err := execute(t, "", "--rounds", "0")
	assert.ErrorIs(t, err, game.ErrInvalidRounds)

	_, err = execute(t, "", "--seed", "abc")
	assert.Error(t, err)
}
