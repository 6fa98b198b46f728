package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store"
	"github.com/joshuapare/storkit/store/alloc"
	"github.com/joshuapare/storkit/store/small"
)

var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Run a create/read/destroy cycle against the element storages",
	RunE: func(cmd *cobra.Command, args []string) error {
		runAllocElement()
		runSmallElement()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elementCmd)
}

func runAllocElement() {
	spy := mem.NewSpy(mem.NewHeap())
	e := alloc.NewElement(spy)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		h, err := store.Create[alloc.Handle](&e, uint64(i))
		if err != nil {
			logger.Error().Err(err).Msg("allocator-backed create failed")
			return
		}
		if *store.Get[uint64](&e, h) != uint64(i) {
			logger.Error().Int("iteration", i).Msg("round-trip mismatch")
			return
		}
		store.Destroy[uint64](&e, h)
	}
	elapsed := time.Since(start)

	logger.Info().
		Str("storage", "alloc.Element").
		Int("iterations", iterations).
		Int("allocs", spy.Allocs).
		Int("frees", spy.Frees).
		Dur("elapsed", elapsed).
		Int64("ns_per_op", elapsed.Nanoseconds()/int64(iterations)).
		Msg("element cycle")
}

func runSmallElement() {
	spy := mem.NewSpy(mem.NewHeap())
	e := small.NewElement[[2]uint64](spy)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		h, err := store.Create[small.ElementHandle](&e, uint64(i))
		if err != nil {
			logger.Error().Err(err).Msg("small create failed")
			return
		}
		if *store.Get[uint64](&e, h) != uint64(i) {
			logger.Error().Int("iteration", i).Msg("round-trip mismatch")
			return
		}
		store.Destroy[uint64](&e, h)
	}
	elapsed := time.Since(start)

	logger.Info().
		Str("storage", "small.Element").
		Int("iterations", iterations).
		Int("allocs", spy.Allocs).
		Int("frees", spy.Frees).
		Dur("elapsed", elapsed).
		Int64("ns_per_op", elapsed.Nanoseconds()/int64(iterations)).
		Msg("element cycle")
}
