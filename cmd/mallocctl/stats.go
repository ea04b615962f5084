package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ProgramLikeABeast/malloc/malloc"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the allocator's size-class layout",
	Long: `Stats prints the segregated free-list geometry: one row per size
class with the range of block sizes it holds. Classes below the small
threshold hold exactly one block size each; larger classes hold a
power-of-two range, and the last class is unbounded.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tMIN BLOCK\tMAX BLOCK\tMAX PAYLOAD")
	for class := 0; class < malloc.NumClasses; class++ {
		lo, hi := malloc.ClassRange(class)
		if hi == 0 {
			fmt.Fprintf(w, "%d\t%d\t-\t-\n", class, lo)
			continue
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", class, lo, hi, hi-8)
	}
	return w.Flush()
}
