package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interviewsprint/internal/llm"
	"github.com/abhisek/interviewsprint/internal/prep"
	"github.com/abhisek/interviewsprint/internal/store"
)

// deps is everything a generating command needs.
type deps struct {
	store     *store.Store
	provider  llm.Provider
	generator *prep.Generator
}

// openDeps opens the event store and builds the generator. A provider that
// cannot be configured does not stop the command: every generation call
// then fails with the configuration error.
func openDeps(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), logger,
		llm.WithMockResponder(prep.StarterResponder))
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		logger.Warn("llm provider unavailable", zap.Error(err))
		provider = llm.Unavailable(err)
	}

	return &deps{
		store:     st,
		provider:  provider,
		generator: prep.New(provider, prep.DefaultConfig(), logger),
	}, nil
}

func (d *deps) Close() error {
	return d.store.Close()
}
