package application

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, args...))
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_Play(t *testing.T) {
	// Given: named players and a winning sequence for O
	input := "0 0\n1 1\n2 2\n0 2\n2 0\n1 0\n0 1\n1 2\n"

	// When: running the interactive game
	out, err := runCmd(t, input, "--player-one", "Alice", "--player-two", "Bob")

	// Then: the flags name the players and O's row win is announced
	require.NoError(t, err)
	assert.Contains(t, out, "Alice's turn (X)")
	assert.Contains(t, out, "Bob (O) wins!")
}

func TestRootCmd_Replay(t *testing.T) {
	t.Run("Prints the result", func(t *testing.T) {
		// When: replaying a top row win with default names
		out, err := runCmd(t, "", "replay", "0,0", "1,1", "0,1", "1,0", "0,2")

		// Then: player one wins
		require.NoError(t, err)
		assert.Contains(t, out, " X | X | X \n")
		assert.Contains(t, out, "Player One (X) wins!")
	})

	t.Run("Fails on an invalid move", func(t *testing.T) {
		// When: replaying an off-board move
		_, err := runCmd(t, "", "replay", "0,3")

		// Then: the error is surfaced
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Requires moves", func(t *testing.T) {
		_, err := runCmd(t, "", "replay")

		require.Error(t, err)
	})
}

func TestLoadConfig_EnvironmentAndFlags(t *testing.T) {
	// Given: an environment override and a flag for the other player
	t.Setenv("TICTACTOE_PLAYER_ONE", "Carol")

	// When: replaying a single move
	out, err := runCmd(t, "", "--player-two", "Dave", "replay", "1,1")

	// Then: the environment names player one and the flag names player two
	require.NoError(t, err)
	assert.Contains(t, out, "Dave's turn (O)")
	assert.NotContains(t, out, "Player Two")
}
