package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/undercover/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "undercover (devel)\n", out)
}

func TestTacticsCheck(t *testing.T) {
	out, err := execute(t, "tactics", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 10 tactics, 16 scenarios")
}

func TestStatsAndReset(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "undercover.db")

	out, err := execute(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No cases closed yet")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, st.EventRepo().AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: store.ActionStart, Level: "beginner", ScenariosTotal: 4,
	}))
	require.NoError(t, st.EventRepo().AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: store.ActionEnd, Level: "beginner", ScenariosTotal: 4,
		ScenariosAnswered: 4, CorrectAnswers: 4, Score: 310, MaxStreak: 4,
	}))
	require.NoError(t, st.Close())

	out, err = execute(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Cases closed:      1")
	assert.Contains(t, out, "Best score:        310")

	out, err = execute(t, "reset", "--yes", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Case history cleared.")

	out, err = execute(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No cases closed yet")
}
