package main

import "github.com/katalvlaran/peakfind/ndgrid"

// maskResult is the --output=mask document.
type maskResult struct {
	Shape []int  `json:"shape"`
	Mask  []bool `json:"mask"`
}

// indicesResult is the --output=indices document.
type indicesResult struct {
	Indices [][]int `json:"indices"`
}

// labelsResult is the --output=labels document.
type labelsResult struct {
	Shape  []int `json:"shape"`
	Labels []int `json:"labels"`
	Count  int   `json:"count"`
}

// render converts mask into the document selected by cfg.output. Labels
// use the same connectivity as detection.
func render(mask []bool, dims []int, cfg *config) (any, error) {
	if cfg.output == outputMask {
		return maskResult{Shape: dims, Mask: mask}, nil
	}
	fp, err := ndgrid.Connectivity(len(dims), cfg.connectivity)
	if err != nil {
		return nil, err
	}
	g, err := ndgrid.NewGrid(dims, fp)
	if err != nil {
		return nil, err
	}
	if cfg.output == outputIndices {
		idx, err := g.Indices(mask)
		if err != nil {
			return nil, err
		}
		if idx == nil {
			idx = [][]int{}
		}

		return indicesResult{Indices: idx}, nil
	}
	labels, n, err := g.Label(mask)
	if err != nil {
		return nil, err
	}

	return labelsResult{Shape: dims, Labels: labels, Count: n}, nil
}
