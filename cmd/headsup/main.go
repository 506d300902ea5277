package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"headsup-poker/internal/config"
	"headsup-poker/internal/rng"
	"headsup-poker/internal/util"
	"headsup-poker/pkg/client"
	"headsup-poker/pkg/room"
)

var (
	hands       = flag.Int("hands", -1, "the number of hands to play, 0 plays until the input is closed")
	seed        = flag.Int64("seed", 0, "the seed of the shuffles and the strategy draws, 0 uses crypto/rand")
	strategyURL = flag.String("strategy-url", "", "the url of the strategy service")
	raiseCap    = flag.Int("raise-cap", -1, "the number of raises allowed per round, 0 for no limit")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	setupColor(cfg)

	gen := rng.New(cfg.Seed)
	players := buildPlayers(cfg, gen, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := room.NewSession(logrus.StandardLogger(), os.Stdout, gen, room.Options{RaiseCap: cfg.RaiseCap}, players...)
	if err != nil {
		logrus.WithError(err).Fatal("could not start the session")
	}

	pterm.DefaultHeader.Println("Heads-up limit hold'em")
	summary, err := session.Run(ctx, cfg.Hands)
	pterm.DefaultBox.WithTitle("Summary").Println(formatSummary(summary))

	switch {
	case err == nil, errors.Is(err, client.ErrInputClosed), errors.Is(err, context.Canceled):
	default:
		logrus.WithError(err).Fatal("session ended")
	}
}

func applyFlags(cfg *config.Config) {
	if *hands >= 0 {
		cfg.Hands = *hands
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *strategyURL != "" {
		cfg.Strategy.URL = *strategyURL
	}

	if *raiseCap >= 0 {
		cfg.RaiseCap = *raiseCap
	}
}

// buildPlayers seats a player for each configured seat kind
// Strategy players get a random name so two of them can be told apart
func buildPlayers(cfg config.Config, gen rng.Generator, in io.Reader, out io.Writer) []room.Player {
	human := client.NewHumanFactory(in, out)
	strategy := client.NewStrategyFactory(logrus.StandardLogger(), client.StrategyOptions{
		URL:     cfg.Strategy.URL,
		Timeout: cfg.Strategy.Timeout,
	}, gen)

	names := util.UniqueNames(gen, len(cfg.Seats))
	players := make([]room.Player, 0, len(cfg.Seats))
	humans := 0
	for i, kind := range cfg.Seats {
		switch kind {
		case config.SeatHuman:
			humans++
			name := "You"
			if humans > 1 {
				name = fmt.Sprintf("Player %d", humans)
			}

			players = append(players, room.Player{Name: name, Factory: human})
		default:
			players = append(players, room.Player{Name: names[i], Factory: strategy})
		}
	}

	return players
}

func formatSummary(s *room.Summary) string {
	lines := []string{
		fmt.Sprintf("Hands played: %d", s.Hands),
		fmt.Sprintf("Folds: %d, showdowns: %d, split pots: %d", s.Folds, s.Showdowns, s.Splits),
	}

	if s.Failed > 0 {
		lines = append(lines, fmt.Sprintf("Failed hands: %d", s.Failed))
	}

	names := make([]string, 0, len(s.Wins))
	for name := range s.Wins {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s won %d", name, s.Wins[name]))
	}

	return strings.Join(lines, "\n")
}

// setupColor disables styling when stdout is not a terminal
func setupColor(cfg config.Config) {
	if !cfg.Log.Color || !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}
}

func setupLogger() {
	cfg := config.Instance()
	logrus.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
