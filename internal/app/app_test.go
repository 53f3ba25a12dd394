package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rollfloor/gridparse"
	"github.com/katalvlaran/rollfloor/internal/config"
	"github.com/katalvlaran/rollfloor/store"
)

const sample = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.`

func newConfig(mode config.Mode, kind store.Kind, workers int) *config.Config {
	return &config.Config{Mode: mode, Store: kind, Workers: workers}
}

func TestRun_Modes(t *testing.T) {
	cases := []struct {
		mode config.Mode
		want string
	}{
		{config.ModeCount, "13\n"},
		{config.ModePeel, "43\n"},
		{config.ModeBoth, "13\n43\n"},
	}
	for _, kind := range store.Kinds() {
		for _, workers := range []int{1, 0} {
			for _, tc := range cases {
				t.Run(string(kind)+"/"+string(tc.mode), func(t *testing.T) {
					var out bytes.Buffer
					err := Run(strings.NewReader(sample), &out, newConfig(tc.mode, kind, workers), nil)
					require.NoError(t, err)
					assert.Equal(t, tc.want, out.String())
				})
			}
		}
	}
}

func TestRun_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader(""), &out, newConfig(config.ModeBoth, store.KindSet, 1), nil))
	assert.Equal(t, "0\n0\n", out.String())
}

func TestRun_SyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("..@\n.x."), &out, newConfig(config.ModePeel, store.KindSet, 1), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, gridparse.ErrUnexpectedChar)

	var se *gridparse.SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 'x', se.Char)
	assert.Equal(t, 1, se.Row)
	assert.Equal(t, 1, se.Col)
	assert.Empty(t, out.String())
}

func TestRun_UnknownMode(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("@"), &out, newConfig("sideways", store.KindSet, 1), nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Empty(t, out.String())
}

func TestRun_InvalidOptions(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("@"), &out, newConfig(config.ModePeel, store.KindSet, -2), nil)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRun_WriteError(t *testing.T) {
	err := Run(strings.NewReader("@"), failingWriter{}, newConfig(config.ModeCount, store.KindSet, 1), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write result")
}

func TestRun_Logs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var out bytes.Buffer

	require.NoError(t, Run(strings.NewReader(sample), &out, newConfig(config.ModePeel, store.KindPacked, 1), zap.New(core)))

	loaded := logs.FilterMessage("grid loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, int64(71), loaded[0].ContextMap()["rolls"])
	assert.Equal(t, "packed", loaded[0].ContextMap()["store"])

	finished := logs.FilterMessage("evaluation finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "peel", finished[0].ContextMap()["mode"])
	assert.Equal(t, int64(28), finished[0].ContextMap()["remaining"])

	// Per-round records are debug level and filtered out here.
	assert.Zero(t, logs.FilterMessage("peel round").Len())
}
