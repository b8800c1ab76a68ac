package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/satlearn/internal/content"
	"github.com/abhisek/satlearn/internal/learning"
	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/store"
)

// app bundles the opened store and the learning service for one command.
type app struct {
	store *store.Store
	svc   *learning.Service
}

// openApp opens the store and builds the learning service from config.
func openApp(cmd *cobra.Command) (*app, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(cmd.Context(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	engine := scoring.NewEngine(cfg.Scoring)
	svc := learning.NewService(engine, st.LearnerRepo(), st.AnswerLog(), log)
	return &app{store: st, svc: svc}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// loadPool reads the pool named by --pool, falling back to pool_path.
func loadPool(cmd *cobra.Command) ([]content.Question, error) {
	path, _ := cmd.Flags().GetString("pool")
	if path == "" {
		path = cfg.PoolPath
	}
	if path == "" {
		return nil, fmt.Errorf("no question pool: pass --pool or set pool_path")
	}
	pool, err := content.LoadPool(path)
	if err != nil {
		return nil, fmt.Errorf("load pool %s: %w", path, err)
	}
	return pool, nil
}
