package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/peakfind/maxima"
	"github.com/katalvlaran/peakfind/ndgrid"
)

// Output modes accepted by --output.
const (
	outputMask    = "mask"
	outputIndices = "indices"
	outputLabels  = "labels"
)

// config holds the parsed command-line flags.
type config struct {
	connectivity int
	allowBorders bool
	minima       bool
	output       string
	verbose      bool
}

// newRootCmd builds the peakfind command.
func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "peakfind [file]",
		Short: "Find local maxima of an n-dimensional array",
		Long: "peakfind reads a JSON array document ({\"shape\":[...],\"dtype\":...,\"data\":[...]})\n" +
			"from a file (optionally .zst or .gz) or stdin and prints its local maxima.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch cfg.output {
			case outputMask, outputIndices, outputLabels:
			default:
				return fmt.Errorf("unknown output %q (want mask, indices or labels)", cfg.output)
			}
			logger := log.New(io.Discard, "peakfind: ", log.Lmicroseconds)
			if cfg.verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}

			return run(cmd, args, cfg, logger)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&cfg.connectivity, "connectivity", "c", 0, "neighbors differ in at most this many coordinates (0 = full)")
	flags.BoolVar(&cfg.allowBorders, "allow-borders", true, "allow cells on the array edge to be maxima")
	flags.BoolVar(&cfg.minima, "minima", false, "find local minima instead of maxima")
	flags.StringVarP(&cfg.output, "output", "o", outputMask, "output form: mask, indices or labels")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

// run reads the document, detects extrema and writes the result.
func run(cmd *cobra.Command, args []string, cfg *config, logger *log.Logger) error {
	start := time.Now()
	raw, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	h, err := decodeHeader(raw)
	if err != nil {
		return err
	}
	logger.Printf("read %d bytes, shape %v, dtype %s", len(raw), h.Shape, h.Dtype)

	opts := []ndgrid.Option{
		ndgrid.WithConnectivity(cfg.connectivity),
		ndgrid.WithAllowBorders(cfg.allowBorders),
	}
	var mask []bool
	switch h.Dtype {
	case "float64":
		mask, err = detect[float64](raw, h.Shape, cfg.minima, opts)
	case "float32":
		mask, err = detect[float32](raw, h.Shape, cfg.minima, opts)
	case "int64":
		mask, err = detect[int64](raw, h.Shape, cfg.minima, opts)
	case "int32":
		mask, err = detect[int32](raw, h.Shape, cfg.minima, opts)
	default:
		return fmt.Errorf("%w: %q", errDtype, h.Dtype)
	}
	if err != nil {
		return err
	}
	logger.Printf("detection finished in %s", time.Since(start))

	result, err := render(mask, h.Shape, cfg)
	if err != nil {
		return err
	}
	out, err := sonnet.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return err
}

// detect decodes the data as []T and runs LocalMaxima or LocalMinima.
func detect[T maxima.Number](raw []byte, dims []int, minima bool, opts []ndgrid.Option) ([]bool, error) {
	data, err := decodeData[T](raw)
	if err != nil {
		return nil, err
	}
	if minima {
		return ndgrid.LocalMinima(data, dims, opts...)
	}

	return ndgrid.LocalMaxima(data, dims, opts...)
}
