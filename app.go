package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// app is the state shared by every command: configuration, the random
// stream, and the data files, which are loaded on first use.
type app struct {
	cfg  config
	log  *logrus.Logger
	in   io.Reader
	out  io.Writer
	rng  *Random
	seed uint32
	st   styles

	scorer *QuadgramScorer
	dict   wordMap
}

func newApp(cfg config, log *logrus.Logger, in io.Reader, out io.Writer) *app {
	a := &app{cfg: cfg, log: log, in: in, out: out, st: newStyles(out)}
	if cfg.Seed != nil {
		a.reseed(*cfg.Seed)
	} else {
		a.rng, a.seed = NewTimeSeededRandom()
	}
	log.WithField("seed", a.seed).Debug("random stream seeded")
	return a
}

func (a *app) reseed(seed uint32) {
	a.seed = seed
	if a.rng == nil {
		a.rng = NewRandom(seed)
		return
	}
	a.rng.Seed(seed)
}

func (a *app) quadgramScorer() (*QuadgramScorer, error) {
	if a.scorer == nil {
		s, err := loadQuadgramScorer(a.cfg.Data.Quadgrams, a.log)
		if err != nil {
			return nil, err
		}
		a.scorer = s
	}
	return a.scorer, nil
}

func (a *app) dictionary() (wordMap, error) {
	if a.dict == nil {
		d, err := loadWordList(a.cfg.Data.Dictionary, a.log)
		if err != nil {
			return nil, err
		}
		a.dict = d
	}
	return a.dict, nil
}

func (a *app) newSolver(scorer *QuadgramScorer) *solver {
	return newSolver(scorer, a.rng, a.cfg.Search, a.log)
}

// searchContext is cancelled by SIGINT or once the configured maximum
// runtime has passed.
func (a *app) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	if a.cfg.MaxRuntime <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.MaxRuntime)
	return ctx, func() {
		cancel()
		stop()
	}
}

type styles struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Label lipgloss.Style
	Error lipgloss.Style
	Dim   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Key:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label: r.NewStyle().Foreground(lipgloss.Color("82")),
		Error: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Dim:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
