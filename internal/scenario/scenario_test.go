package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"flash-ca/internal/core"
	"flash-ca/internal/textgrid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStandardScenario(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "standard.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "standard", sc.Name)
	assert.Equal(t, 100, sc.Steps)
	assert.True(t, sc.FindSync)

	swarm, res, err := sc.Run()
	require.NoError(t, err)
	assert.Equal(t, 1656, res.TotalFlashes)
	assert.True(t, res.Synced)
	assert.Equal(t, 195, res.SyncTick)
	assert.Equal(t, 195, swarm.Tick())
}

func TestSyncWithinSteps(t *testing.T) {
	sc, err := Parse([]byte("grid: \"99\\n99\\n\"\nsteps: 3\n"))
	require.NoError(t, err)

	_, res, err := sc.Run()
	require.NoError(t, err)
	assert.True(t, res.Synced)
	assert.Equal(t, 1, res.SyncTick)
	assert.Equal(t, 4, res.TotalFlashes)
}

func TestRandomScenario(t *testing.T) {
	sc, err := Parse([]byte("width: 6\nheight: 4\nseed: 9\nsteps: 10\n"))
	require.NoError(t, err)

	a, _, err := sc.Run()
	require.NoError(t, err)
	b, _, err := sc.Run()
	require.NoError(t, err)
	assert.Equal(t, textgrid.Format(a.Grid()), textgrid.Format(b.Grid()))
	assert.Equal(t, 6, a.Size().W)
	assert.Equal(t, 4, a.Size().H)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"negative steps": "grid: \"1\"\nsteps: -1\n",
		"negative limit": "grid: \"1\"\nsteps: 1\nsync_limit: -5\n",
		"no grid":        "steps: 10\n",
		"zero height":    "width: 3\nsteps: 10\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestMalformedInput(t *testing.T) {
	_, err := Parse([]byte("steps: [1, 2"))
	require.Error(t, err)

	_, err = Parse([]byte("grid: \"12\\n3\\n\"\nsteps: 1\n"))
	require.ErrorIs(t, err, ErrInvalid)
	require.ErrorIs(t, err, textgrid.ErrRaggedRow)

	_, err = Parse([]byte("grid: \"1x\"\nsteps: 1\n"))
	require.ErrorIs(t, err, textgrid.ErrNonDigit)

	_, err = Parse([]byte("width: 4294967296\nheight: 4294967296\nsteps: 1\n"))
	require.ErrorIs(t, err, ErrInvalid)
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestBuildReportsGridErrorsWithoutValidate(t *testing.T) {
	sc := &Scenario{Grid: "12\n3\n", Steps: 1}
	_, _, err := sc.Run()
	require.ErrorIs(t, err, textgrid.ErrRaggedRow)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOnTickSeesEveryTick(t *testing.T) {
	sc, err := Parse([]byte("grid: \"11111\\n19991\\n19191\\n19991\\n11111\\n\"\nsteps: 2\nfind_sync: true\nsync_limit: 3\n"))
	require.NoError(t, err)

	var ticks, flashes []int
	sc.OnTick = func(tick, n int) {
		ticks = append(ticks, tick)
		flashes = append(flashes, n)
	}
	_, res, err := sc.Run()
	require.NoError(t, err)
	assert.False(t, res.Synced)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ticks)
	assert.Equal(t, 9, flashes[0])
	assert.Equal(t, 9, res.TotalFlashes)
}
