package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aruizf/biogen/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show request log statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		sum, err := st.Usage(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Requests:       %d\n", sum.Requests)
		fmt.Printf("Failures:       %d\n", sum.Failures)
		fmt.Printf("Input tokens:   %d\n", sum.InputTokens)
		fmt.Printf("Output tokens:  %d\n", sum.OutputTokens)
		fmt.Printf("Avg latency:    %d ms\n", sum.AvgLatencyMs)

		if sum.Failures > 0 {
			failures, err := st.RecentFailures(ctx, 5)
			if err != nil {
				return err
			}
			fmt.Println("\nRecent failures:")
			for _, f := range failures {
				fmt.Println("  " + f)
			}
		}
		return nil
	},
}
