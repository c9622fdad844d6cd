package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drpriyanshi/companion-tui/internal/chat"
	"github.com/drpriyanshi/companion-tui/internal/geo"
	"github.com/drpriyanshi/companion-tui/internal/rng"
	"github.com/drpriyanshi/companion-tui/internal/session"
	"github.com/drpriyanshi/companion-tui/internal/store"
	"github.com/drpriyanshi/companion-tui/internal/util"
)

// Run resolves the launch session and blocks on the TUI program until exit.
func Run(ctx context.Context, st *store.Store, cfg util.Config, version string) error {
	sess, err := session.Start(ctx, st)
	if err != nil {
		return err
	}
	seed, err := rng.NewSeed(cfg.SeedText)
	if err != nil {
		text, rerr := rng.RandomText()
		if rerr != nil {
			return rerr
		}
		if seed, err = rng.NewSeed(text); err != nil {
			return err
		}
	}
	m := initialModel(ctx, st, geo.FromConfig(cfg), chat.NewResponder(seed), cfg, sess, version)
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
