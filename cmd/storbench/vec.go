package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/raw"
	"github.com/joshuapare/storkit/store/alloc"
	"github.com/joshuapare/storkit/store/small"
)

var vecElems int

var vecCmd = &cobra.Command{
	Use:   "vec",
	Short: "Grow vectors over different range storages",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runAllocVec(); err != nil {
			return err
		}
		return runSmallVec()
	},
}

func init() {
	vecCmd.Flags().IntVar(&vecElems, "elems", 1024, "Elements pushed per vector")
	rootCmd.AddCommand(vecCmd)
}

func runAllocVec() error {
	spy := mem.NewSpy(mem.NewHeap())

	start := time.Now()
	for i := 0; i < iterations; i++ {
		v, err := raw.NewVec[uint64, alloc.RangeHandle, alloc.Range, *alloc.Range](alloc.NewRange(spy), 0)
		if err != nil {
			return err
		}
		for j := 0; j < vecElems; j++ {
			if err := v.Push(uint64(j)); err != nil {
				return err
			}
		}
		v.Close()
	}
	elapsed := time.Since(start)

	logger.Info().
		Str("storage", "alloc.Range").
		Int("iterations", iterations).
		Int("elems", vecElems).
		Int("allocs", spy.Allocs).
		Dur("elapsed", elapsed).
		Msg("vec fill")
	return nil
}

func runSmallVec() error {
	spy := mem.NewSpy(mem.NewHeap())

	start := time.Now()
	for i := 0; i < iterations; i++ {
		v, err := raw.NewVec[uint64, small.RangeHandle, small.Range[[16]uint64], *small.Range[[16]uint64]](
			small.NewRange[[16]uint64](spy), 0)
		if err != nil {
			return err
		}
		for j := 0; j < vecElems; j++ {
			if err := v.Push(uint64(j)); err != nil {
				return err
			}
		}
		v.Close()
	}
	elapsed := time.Since(start)

	logger.Info().
		Str("storage", "small.Range[16]").
		Int("iterations", iterations).
		Int("elems", vecElems).
		Int("allocs", spy.Allocs).
		Dur("elapsed", elapsed).
		Msg("vec fill")
	return nil
}
