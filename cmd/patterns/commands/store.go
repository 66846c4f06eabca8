package commands

import (
	"git.home.luguber.info/inful/patterns/internal/config"
	"git.home.luguber.info/inful/patterns/internal/logfields"
	"git.home.luguber.info/inful/patterns/internal/storefactory"
)

// StoreCmd implements the 'store' command.
type StoreCmd struct {
	Season string `short:"s" help:"Fixture family (default or christmas); overrides configuration"`
}

func (s *StoreCmd) Run(g *Global, root *CLI) error {
	season := s.Season
	if season == "" {
		cfg, err := config.LoadOrDefault(root.Config)
		if err != nil {
			return err
		}
		season = cfg.Store.Season
	}

	factory, err := storefactory.ForSeason(storefactory.Season(season), g.stdout())
	if err != nil {
		return err
	}

	g.logger().Debug("Opening store", logfields.Season(season))
	storefactory.NewClient(factory).Open()
	g.recorder().IncStoreOpened(season)
	return nil
}
