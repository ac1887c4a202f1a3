package run

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MichalKnapik/dd-net-checker/internal/model"
)

func TestDoEndToEndS2(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "s2")
	opts := Options{
		SyncPath:         filepath.Join(dir, "sync.modgraph"),
		ModelPaths:       []string{filepath.Join(dir, "c1.modgraph"), filepath.Join(dir, "c2.modgraph")},
		CountTransitions: true,
	}

	report, err := Do(opts, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, float64(2), report.Result.ReachableCount)
	require.Len(t, report.Network.Automata, 2)
}

func TestDoWritesDiagrams(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "s2")
	dotDir := t.TempDir()
	opts := Options{
		SyncPath:   filepath.Join(dir, "sync.modgraph"),
		ModelPaths: []string{filepath.Join(dir, "c1.modgraph"), filepath.Join(dir, "c2.modgraph")},
		DotDir:     dotDir,
	}

	_, err := Do(opts, zap.NewNop())
	require.NoError(t, err)
}

func TestDoRejectsMissingSyncFile(t *testing.T) {
	opts := Options{
		SyncPath:   filepath.Join("testdata-does-not-exist", "sync.modgraph"),
		ModelPaths: []string{"irrelevant.modgraph"},
	}
	_, err := Do(opts, zap.NewNop())
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, model.InputMalformed, merr.Kind)
}
