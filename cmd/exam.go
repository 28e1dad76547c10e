package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aruizf/biogen/internal/app"
	"github.com/aruizf/biogen/internal/examgen"
	"github.com/aruizf/biogen/internal/llm"
	"github.com/aruizf/biogen/internal/store"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Start an exam session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExam(cmd)
	},
}

func init() {
	examCmd.Flags().Int("questions", 100, "Number of questions in the full exam")
}

func runExam(cmd *cobra.Command) error {
	total, _ := cmd.Flags().GetInt("questions")
	if total < 1 {
		return fmt.Errorf("--questions must be at least 1")
	}

	// Open the store for request logging. The exam itself works without
	// it, so a broken database only costs diagnostics.
	var log llm.RequestLog
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if st, oerr := store.Open(dbPath); oerr == nil {
			defer st.Close()
			log = st.RequestLog()
		} else {
			fmt.Fprintln(os.Stderr, "request log unavailable:", oerr)
		}
	} else {
		fmt.Fprintln(os.Stderr, "request log unavailable:", err)
	}

	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("configure provider: %w", err)
	}

	provider, err := llm.NewProvider(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("build provider: %w", err)
	}

	gcfg := examgen.DefaultConfig()
	if cfg.Timeout > 0 {
		gcfg.BatchTimeout = cfg.Timeout
	}

	generator := examgen.New(provider, gcfg)
	return app.Run(generator, total)
}
