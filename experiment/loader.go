package experiment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// ErrBadTopologyCSV wraps every CSV parsing failure so callers can match the
// whole class with errors.Is.
var ErrBadTopologyCSV = errors.New("experiment: malformed topology csv")

// LoadCSV reads the three topology tables and assembles a validated Network.
//
// Expected headers (column order is free, extra columns are ignored):
//
//	nodes.csv:   id
//	edges.csv:   src,dst,capacity,cost
//	demands.csv: src,dst,flow
func LoadCSV(nodesPath, edgesPath, demandsPath string) (*network.Network, error) {
	nodes, err := loadNodes(nodesPath)
	if err != nil {
		return nil, err
	}
	edges, err := loadEdges(edgesPath)
	if err != nil {
		return nil, err
	}
	demands, err := loadDemands(demandsPath)
	if err != nil {
		return nil, err
	}

	return network.Build(nodes, edges, demands)
}

func loadNodes(path string) ([]network.Node, error) {
	rows, cols, err := readTable(path, "id")
	if err != nil {
		return nil, err
	}

	nodes := make([]network.Node, len(rows))
	for i, row := range rows {
		nodes[i] = network.Node{ID: row[cols[0]]}
	}

	return nodes, nil
}

func loadEdges(path string) ([]network.Edge, error) {
	rows, cols, err := readTable(path, "src", "dst", "capacity", "cost")
	if err != nil {
		return nil, err
	}

	edges := make([]network.Edge, len(rows))
	for i, row := range rows {
		e := network.Edge{From: row[cols[0]], To: row[cols[1]]}
		if e.Capacity, err = parseField(path, i, "capacity", row[cols[2]]); err != nil {
			return nil, err
		}
		if e.Cost, err = parseField(path, i, "cost", row[cols[3]]); err != nil {
			return nil, err
		}
		edges[i] = e
	}

	return edges, nil
}

func loadDemands(path string) ([]network.Demand, error) {
	rows, cols, err := readTable(path, "src", "dst", "flow")
	if err != nil {
		return nil, err
	}

	demands := make([]network.Demand, len(rows))
	for i, row := range rows {
		d := network.Demand{Src: row[cols[0]], Dst: row[cols[1]]}
		if d.Flow, err = parseField(path, i, "flow", row[cols[2]]); err != nil {
			return nil, err
		}
		demands[i] = d
	}

	return demands, nil
}

// readTable parses one CSV file and resolves the wanted header names to
// column indices. Returned rows exclude the header.
func readTable(path string, want ...string) ([][]string, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("experiment: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: missing header", ErrBadTopologyCSV, path)
	}

	cols := make([]int, len(want))
	for i, name := range want {
		cols[i] = -1
		for j, h := range header {
			if h == name {
				cols[i] = j
				break
			}
		}
		if cols[i] == -1 {
			return nil, nil, fmt.Errorf("%w: %s: missing column %q", ErrBadTopologyCSV, path, name)
		}
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrBadTopologyCSV, path, err)
		}
		rows = append(rows, row)
	}

	return rows, cols, nil
}

func parseField(path string, row int, name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: row %d: bad %s %q", ErrBadTopologyCSV, path, row+1, name, raw)
	}

	return v, nil
}
