package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTable() *Table {
	t := NewTable()
	t.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return t
}

func TestTable_Lifecycle(t *testing.T) {
	tbl := fixedTable()

	s, err := tbl.Start("web")
	require.NoError(t, err)
	assert.Equal(t, Running, s.State)
	assert.Equal(t, tbl.now(), s.Since)

	_, err = tbl.Start("web")
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	s, err = tbl.Stop("web")
	require.NoError(t, err)
	assert.Equal(t, Stopped, s.State)

	_, err = tbl.Stop("web")
	assert.ErrorIs(t, err, ErrNotRunning)

	s, err = tbl.Restart("web")
	require.NoError(t, err)
	assert.Equal(t, Running, s.State)
	assert.Equal(t, 1, s.Restarts)
}

func TestTable_Unknown(t *testing.T) {
	tbl := fixedTable()

	_, err := tbl.Stop("ghost")
	assert.ErrorIs(t, err, ErrUnknownService)
	_, err = tbl.Restart("ghost")
	assert.ErrorIs(t, err, ErrUnknownService)
	_, ok := tbl.Get("ghost")
	assert.False(t, ok)
}

func TestTable_ListSorted(t *testing.T) {
	tbl := fixedTable()
	for _, name := range []string{"web", "api", "db"} {
		_, err := tbl.Start(name)
		require.NoError(t, err)
	}

	var names []string
	for _, s := range tbl.List() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"api", "db", "web"}, names)
}

func TestTable_SnapshotsAreCopies(t *testing.T) {
	tbl := fixedTable()
	s, err := tbl.Start("web")
	require.NoError(t, err)

	s.State = Stopped
	got, ok := tbl.Get("web")
	require.True(t, ok)
	assert.Equal(t, Running, got.State)
}
