package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/experiment"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// writeTopology drops the three CSV tables into a temp dir and returns their
// paths in (nodes, edges, demands) order.
func writeTopology(t *testing.T, nodes, edges, demands string) (string, string, string) {
	t.Helper()

	dir := t.TempDir()
	paths := [3]string{
		filepath.Join(dir, "nodes.csv"),
		filepath.Join(dir, "edges.csv"),
		filepath.Join(dir, "demands.csv"),
	}
	for i, body := range []string{nodes, edges, demands} {
		require.NoError(t, os.WriteFile(paths[i], []byte(body), 0o644))
	}

	return paths[0], paths[1], paths[2]
}

func TestLoadCSV_Roundtrip(t *testing.T) {
	nodes, edges, demands := writeTopology(t,
		"id\nA\nB\nC\n",
		"src,dst,capacity,cost\nA,B,10,1\nB,C,10,1\nA,C,10,5\n",
		"src,dst,flow\nA,C,2\n",
	)

	net, err := experiment.LoadCSV(nodes, edges, demands)
	require.NoError(t, err)

	require.Equal(t, 3, net.NodeCount())
	require.Equal(t, 3, net.EdgeCount())
	require.Equal(t, 1, net.DemandCount())

	e, ok := net.EdgeBetween("A", "C")
	require.True(t, ok)
	require.Equal(t, 5.0, e.Cost)
	require.Equal(t, 10.0, e.Capacity)

	d := net.Demands()[0]
	require.Equal(t, network.Demand{Src: "A", Dst: "C", Flow: 2}, d)
}

func TestLoadCSV_HeaderOrderIsFree(t *testing.T) {
	// Shuffled columns plus an extra one the loader must ignore.
	nodes, edges, demands := writeTopology(t,
		"id\nA\nB\n",
		"cost,dst,note,capacity,src\n1,B,backbone,10,A\n",
		"flow,dst,src\n1,B,A\n",
	)

	net, err := experiment.LoadCSV(nodes, edges, demands)
	require.NoError(t, err)

	e, ok := net.EdgeBetween("A", "B")
	require.True(t, ok)
	require.Equal(t, 1.0, e.Cost)
}

func TestLoadCSV_Failures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := experiment.LoadCSV(
			filepath.Join(t.TempDir(), "absent.csv"), "", "")
		require.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		nodes, edges, demands := writeTopology(t,
			"id\nA\nB\n",
			"src,dst,cost\nA,B,1\n", // no capacity column
			"src,dst,flow\n",
		)
		_, err := experiment.LoadCSV(nodes, edges, demands)
		require.ErrorIs(t, err, experiment.ErrBadTopologyCSV)
	})

	t.Run("non-numeric field", func(t *testing.T) {
		nodes, edges, demands := writeTopology(t,
			"id\nA\nB\n",
			"src,dst,capacity,cost\nA,B,ten,1\n",
			"src,dst,flow\n",
		)
		_, err := experiment.LoadCSV(nodes, edges, demands)
		require.ErrorIs(t, err, experiment.ErrBadTopologyCSV)
	})

	t.Run("topology validation propagates", func(t *testing.T) {
		nodes, edges, demands := writeTopology(t,
			"id\nA\nB\n",
			"src,dst,capacity,cost\nA,X,1,1\n",
			"src,dst,flow\n",
		)
		_, err := experiment.LoadCSV(nodes, edges, demands)
		require.ErrorIs(t, err, network.ErrUnknownNode)
	})
}
