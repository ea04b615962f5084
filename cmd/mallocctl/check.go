package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ProgramLikeABeast/malloc/heap"
	"github.com/ProgramLikeABeast/malloc/malloc"
)

var (
	checkOps  int
	checkSeed int64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a workload with heap validation after every operation",
	Long: `Check is the paranoid variant of stress: it validates the full heap
after every single operation, so a corrupting operation is identified
the moment it happens rather than at the next sampling interval. It is
correspondingly slow and meant for small operation counts.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVarP(&checkOps, "ops", "n", 2000, "Number of operations to run")
	checkCmd.Flags().Int64VarP(&checkSeed, "seed", "s", 0, "Random seed (0 picks one from the clock)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	seed := checkSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug("starting checked workload", "ops", checkOps, "seed", seed)

	arena, err := heap.New(&heap.Options{Limit: 1 << 26})
	if err != nil {
		return fmt.Errorf("creating arena: %w", err)
	}
	defer arena.Close()

	al, err := malloc.New(arena)
	if err != nil {
		return fmt.Errorf("initializing allocator: %w", err)
	}

	live := make([]malloc.Ref, 0, 256)
	for i := 0; i < checkOps; i++ {
		if rng.Intn(2) == 0 || len(live) == 0 {
			ref, _, err := al.Malloc(1 + rng.Intn(2048))
			if err != nil {
				return fmt.Errorf("op %d: malloc: %w", i, err)
			}
			live = append(live, ref)
		} else {
			j := rng.Intn(len(live))
			if err := al.Free(live[j]); err != nil {
				return fmt.Errorf("op %d: free: %w", i, err)
			}
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		}
		if err := al.Check(); err != nil {
			return fmt.Errorf("heap corrupt after op %d (seed %d): %w", i, seed, err)
		}
	}

	printInfo("Heap valid after %d operations (seed %d)\n", checkOps, seed)
	return nil
}
