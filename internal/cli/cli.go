package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"skull-toolbox/internal/ai"
	"skull-toolbox/internal/config"
	"skull-toolbox/internal/events"
	"skull-toolbox/internal/game"
	"skull-toolbox/internal/match"
	"skull-toolbox/internal/player"
	"skull-toolbox/internal/stats"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
	out  io.Writer
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
		out:  os.Stdout,
	}
}

// Close restores the terminal.
func (c *CLI) Close() error {
	return c.line.Close()
}

// RunPlay seats humans at the terminal followed by bots and plays one match.
func (c *CLI) RunPlay(cfg *config.GameConfig, humans, bots int, rand *rand.Rand) error {
	seats := humans + bots
	if seats < game.MinPlayers || seats > game.MaxPlayers {
		return fmt.Errorf("%d humans and %d bots make %d players, need %d to %d", humans, bots, seats, game.MinPlayers, game.MaxPlayers)
	}
	C.Header.Println("--- Skull ---")

	names := cfg.NamesFor(seats)
	players := make([]player.Player, 0, seats)
	humanSeats := make([]int, 0, humans)
	for seat := 0; seat < humans; seat++ {
		name, err := c.promptForName(seat, names[seat])
		if err != nil {
			return c.aborted(err)
		}
		names[seat] = name
		h := player.NewHumanPlayer(&linePrompter{line: c.line}, c.out)
		h.Help = c.printPlayHelp
		players = append(players, named{Player: h, name: name})
		humanSeats = append(humanSeats, seat)
	}
	for seat := humans; seat < seats; seat++ {
		players = append(players, named{Player: c.newBot(cfg, rand), name: names[seat]})
	}
	if humans > 0 {
		c.printPlayHelp()
	}

	g := game.New(seats, game.WithLogger(c.log), game.WithPicker(rand))
	em := events.NewManager()
	renderer := NewTableRenderer(c.out, g, names, humanSeats...)
	em.Subscribe(renderer)

	runner, err := match.NewRunner(g, players, em, c.log, limitsOf(cfg))
	if err != nil {
		return err
	}
	runner.Observe(renderer)
	if _, err := runner.Run(); err != nil {
		return c.aborted(err)
	}
	return nil
}

// RunSim plays games matches between bots and prints per-seat statistics.
// With watch set every match is narrated.
func (c *CLI) RunSim(cfg *config.GameConfig, seats, games int, watch bool, rand *rand.Rand) error {
	if seats < game.MinPlayers || seats > game.MaxPlayers {
		return fmt.Errorf("invalid number of players %d, must be between %d and %d", seats, game.MinPlayers, game.MaxPlayers)
	}
	if games < 1 {
		return fmt.Errorf("need at least one game, got %d", games)
	}
	C.Header.Println("--- Running Fast Simulation ---")

	names := cfg.NamesFor(seats)
	collector := stats.NewCollector(names)
	abandoned := 0
	for i := 0; i < games; i++ {
		players := make([]player.Player, seats)
		for seat := range players {
			players[seat] = named{Player: c.newBot(cfg, rand), name: names[seat]}
		}
		g := game.New(seats, game.WithLogger(c.log), game.WithPicker(rand))
		em := events.NewManager()
		em.Subscribe(collector)

		runner, err := match.NewRunner(g, players, em, c.log.WithField("match", i+1), limitsOf(cfg))
		if err != nil {
			return err
		}
		if watch {
			renderer := NewTableRenderer(c.out, g, names)
			em.Subscribe(renderer)
			runner.Observe(renderer)
			C.Header.Printf("\n--- Match %d ---\n", i+1)
		}
		res, err := runner.Run()
		if err != nil {
			abandoned++
			c.log.WithError(err).WithField("match", i+1).Warn("Match abandoned")
			continue
		}
		c.log.WithFields(logrus.Fields{"match": i + 1, "winner": res.WinnerName, "steps": res.Steps}).Debug("Match done")
	}

	fmt.Fprintln(c.out)
	RenderStats(c.out, collector)
	if abandoned > 0 {
		C.Warn.Printf("%d of %d matches were abandoned.\n", abandoned, games)
	}
	return nil
}

func (c *CLI) newBot(cfg *config.GameConfig, rand *rand.Rand) player.Player {
	chooser := ai.NewRandomChooser(rand)
	if cfg.Bots == config.BotRandom {
		return ai.NewRandomBrain(c.log, chooser)
	}
	return ai.NewBrain(c.log, chooser)
}

// aborted turns a closed prompt into a clean exit.
func (c *CLI) aborted(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		C.Info.Println("\nGoodbye!")
		return nil
	}
	return err
}

func limitsOf(cfg *config.GameConfig) match.Limits {
	return match.Limits{MaxSteps: cfg.MaxSteps, MaxRejections: cfg.MaxRejections}
}

// named fixes a player's display name before the runner seats it.
type named struct {
	player.Player
	name string
}

func (n named) Name() string { return n.name }

func (n named) Rejected(resp game.Response, err error) {
	if l, ok := n.Player.(player.RejectionListener); ok {
		l.Rejected(resp, err)
	}
}
