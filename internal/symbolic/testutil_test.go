package symbolic

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MichalKnapik/dd-net-checker/internal/bdd"
	"github.com/MichalKnapik/dd-net-checker/internal/model"
)

// loadScenario parses the sync + model files under testdata/<name> and
// returns the resulting network. The scenario names and fixtures mirror
// spec.md §8's S1-S5.
func loadScenario(t *testing.T, name string, modelFiles ...string) *model.Network {
	t.Helper()
	dir := filepath.Join("..", "..", "testdata", name)
	syncPath := filepath.Join(dir, "sync.modgraph")

	paths := make([]string, len(modelFiles))
	for i, f := range modelFiles {
		paths[i] = filepath.Join(dir, f)
	}

	net, err := model.LoadNetwork(syncPath, paths, true)
	require.NoError(t, err)
	return net
}

func newTestManager(t *testing.T) bdd.Manager {
	t.Helper()
	mgr, err := bdd.NewRuddManager(8)
	require.NoError(t, err)
	return mgr
}
