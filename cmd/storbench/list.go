package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/raw"
	"github.com/joshuapare/storkit/store/alloc"
)

var listNodes int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fill and drain a linked list over an allocator-backed storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		spy := mem.NewSpy(mem.NewHeap())

		start := time.Now()
		for i := 0; i < iterations; i++ {
			l := raw.NewList[uint64, alloc.Handle, alloc.Element, *alloc.Element](alloc.NewElement(spy))
			for j := 0; j < listNodes; j++ {
				if err := l.PushFront(uint64(j)); err != nil {
					return err
				}
			}
			l.Close()
		}
		elapsed := time.Since(start)

		logger.Info().
			Str("storage", "alloc.Element").
			Int("iterations", iterations).
			Int("nodes", listNodes).
			Int("allocs", spy.Allocs).
			Bool("balanced", spy.Balanced()).
			Dur("elapsed", elapsed).
			Msg("list fill and drain")
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listNodes, "nodes", 64, "Nodes pushed per list")
	rootCmd.AddCommand(listCmd)
}
