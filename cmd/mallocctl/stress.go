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
	stressOps        int
	stressSeed       int64
	stressMaxSize    int
	stressLimit      int
	stressCheckEvery int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Run a randomized malloc/free/realloc/calloc workload",
	Long: `Stress drives the allocator with a seeded random mix of operations,
validating heap integrity at a fixed interval and printing allocation
statistics when the workload completes. A non-zero exit means the heap
failed validation or an operation returned an unexpected error.`,
	RunE: runStress,
}

func init() {
	stressCmd.Flags().IntVarP(&stressOps, "ops", "n", 100000, "Number of operations to run")
	stressCmd.Flags().Int64VarP(&stressSeed, "seed", "s", 0, "Random seed (0 picks one from the clock)")
	stressCmd.Flags().IntVarP(&stressMaxSize, "max-size", "m", 4096, "Maximum allocation size in bytes")
	stressCmd.Flags().IntVarP(&stressLimit, "limit", "l", 1<<28, "Arena growth limit in bytes")
	stressCmd.Flags().IntVar(&stressCheckEvery, "check-every", 1024, "Validate the heap every N operations (0 disables)")
	rootCmd.AddCommand(stressCmd)
}

func runStress(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	seed := stressSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug("starting stress workload",
		"ops", stressOps, "seed", seed, "maxSize", stressMaxSize, "limit", stressLimit)

	arena, err := heap.New(&heap.Options{Limit: stressLimit})
	if err != nil {
		return fmt.Errorf("creating arena: %w", err)
	}
	defer arena.Close()

	al, err := malloc.New(arena)
	if err != nil {
		return fmt.Errorf("initializing allocator: %w", err)
	}

	start := time.Now()
	live := make([]malloc.Ref, 0, 1024)
	for i := 0; i < stressOps; i++ {
		switch op := rng.Intn(10); {
		case op < 4 || len(live) == 0: // malloc
			ref, _, err := al.Malloc(1 + rng.Intn(stressMaxSize))
			if err != nil {
				return fmt.Errorf("op %d: malloc: %w", i, err)
			}
			live = append(live, ref)
		case op < 7: // free
			j := rng.Intn(len(live))
			if err := al.Free(live[j]); err != nil {
				return fmt.Errorf("op %d: free: %w", i, err)
			}
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		case op < 9: // realloc, occasionally to size zero, which frees
			j := rng.Intn(len(live))
			ref, _, err := al.Realloc(live[j], rng.Intn(stressMaxSize+1))
			if err != nil {
				return fmt.Errorf("op %d: realloc: %w", i, err)
			}
			if ref == 0 {
				live[j] = live[len(live)-1]
				live = live[:len(live)-1]
			} else {
				live[j] = ref
			}
		default: // calloc
			ref, _, err := al.Calloc(1+rng.Intn(16), 1+rng.Intn(stressMaxSize/16+1))
			if err != nil {
				return fmt.Errorf("op %d: calloc: %w", i, err)
			}
			live = append(live, ref)
		}
		if stressCheckEvery > 0 && i%stressCheckEvery == 0 {
			if err := al.Check(); err != nil {
				return fmt.Errorf("op %d: heap validation failed: %w", i, err)
			}
		}
	}

	for _, ref := range live {
		if err := al.Free(ref); err != nil {
			return fmt.Errorf("draining: free: %w", err)
		}
	}
	if err := al.Check(); err != nil {
		return fmt.Errorf("final heap validation failed: %w", err)
	}
	elapsed := time.Since(start)

	printInfo("Completed %d operations in %s (seed %d)\n\n", stressOps, elapsed.Round(time.Millisecond), seed)
	printStats(arena, al)
	return nil
}

func printStats(arena *heap.Arena, al *malloc.Allocator) {
	st := al.Stats()
	printInfo("Heap size:        %d bytes\n", arena.Size())
	printInfo("Malloc calls:     %d\n", st.MallocCalls)
	printInfo("Free calls:       %d\n", st.FreeCalls)
	printInfo("Realloc calls:    %d\n", st.ReallocCalls)
	printInfo("Calloc calls:     %d\n", st.CallocCalls)
	printInfo("Heap growths:     %d (%d bytes)\n", st.GrowCalls, st.GrowBytes)
	printInfo("Bytes allocated:  %d\n", st.BytesAllocated)
	printInfo("Bytes freed:      %d\n", st.BytesFreed)
	printInfo("Used bytes:       %d\n", al.UsedBytes())
	printInfo("Free bytes:       %d\n", al.FreeBytes())
	printInfo("Blocks split:     %d\n", st.SplitCount)
	printInfo("Coalesces:        %d left, %d right\n", st.CoalesceLeft, st.CoalesceRight)
	printInfo("Free-list reuses: %d\n", st.Reused)
}
