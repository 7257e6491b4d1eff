package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestRecordRecentSummary(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	base := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	rounds := []Result{
		{SessionID: "s1", RoundID: "r1", Language: "en", Word: "cat", Outcome: "won", WrongGuesses: 1, Points: 3, FinishedAt: base},
		{SessionID: "s1", RoundID: "r2", Language: "en", Word: "dog", Outcome: "lost", WrongGuesses: 6, FinishedAt: base.Add(time.Minute)},
		{SessionID: "s1", RoundID: "r3", Language: "es", Word: "niño", Outcome: "won", Points: 4, FinishedAt: base.Add(2 * time.Minute)},
		{SessionID: "s2", RoundID: "r4", Language: "en", Word: "eel", Outcome: "won", Points: 3, FinishedAt: base},
	}
	for _, r := range rounds {
		require.NoError(t, s.Record(ctx, r))
	}
	// duplicates are ignored
	require.NoError(t, s.Record(ctx, rounds[0]))

	got, err := s.Recent(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "r3", got[0].RoundID)
	assert.Equal(t, "niño", got[0].Word)
	assert.Equal(t, "r1", got[2].RoundID)
	assert.True(t, got[2].FinishedAt.Equal(base))

	limited, err := s.Recent(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	sum, err := s.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, Summary{Played: 3, Won: 2, Lost: 1, Points: 7}, sum)

	empty, err := s.Summary(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, Summary{}, empty)
}

func TestReopenSkipsAppliedMigrations(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)
	require.NoError(t, s.Record(ctx, Result{SessionID: "s", RoundID: "r", Language: "en", Word: "x", Outcome: "won", Points: 1}))
	require.NoError(t, s.Close())

	again, err := Open(path)
	require.NoError(t, err)
	defer again.Close()

	got, err := again.Recent(ctx, "s", 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRejectsUnknownOutcome(t *testing.T) {
	s, _ := openTemp(t)
	err := s.Record(context.Background(), Result{SessionID: "s", RoundID: "r", Language: "en", Word: "x", Outcome: "draw"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	ctx := context.Background()
	assert.NoError(t, r.Record(ctx, Result{}))
	got, err := r.Recent(ctx, "s", 5)
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, r.Close())
}

func TestRecentReportsBadTimestamp(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO rounds (round_id, session_id, language, word, outcome, finished_at)
        VALUES ('r', 's', 'en', 'x', 'won', 'yesterday')`)
	require.NoError(t, err)

	_, err = s.Recent(ctx, "s", 5)
	assert.Error(t, err)
}
