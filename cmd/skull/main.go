package main

import (
	"math/rand"
	"time"

	"skull-toolbox/internal/cli"
	"skull-toolbox/internal/config"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type CLI struct {
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Logging level (debug, info, warn, error)"`
	Config   string `default:"default_config.json" type:"path" help:"Game configuration file"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`

	Play PlayCmd `cmd:"" help:"Play a match at this terminal against bots"`
	Sim  SimCmd  `cmd:"" help:"Run bot-only matches and print statistics"`
}

type PlayCmd struct {
	Humans int `default:"1" help:"Number of people at the terminal"`
	Bots   int `default:"3" help:"Number of computer players"`
}

type SimCmd struct {
	Players int  `default:"4" help:"Number of players per match"`
	Games   int  `default:"100" help:"Number of matches to run"`
	Watch   bool `short:"w" help:"Narrate every match"`
}

// env carries what every command needs.
type env struct {
	ui   *cli.CLI
	cfg  *config.GameConfig
	rand *rand.Rand
}

func (c *PlayCmd) Run(e *env) error {
	return e.ui.RunPlay(e.cfg, c.Humans, c.Bots, e.rand)
}

func (c *SimCmd) Run(e *env) error {
	return e.ui.RunSim(e.cfg, c.Players, c.Games, c.Watch, e.rand)
}

func main() {
	var args CLI
	ctx := kong.Parse(&args,
		kong.Name("skull"),
		kong.Description("Skull rules engine: play at the terminal or simulate bot matches"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	log := logrus.New()
	level, err := logrus.ParseLevel(args.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	gameConfig, err := config.Load(args.Config)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("Random source ready")

	ui := cli.NewCLI(log)
	err = ctx.Run(&env{ui: ui, cfg: gameConfig, rand: rand.New(rand.NewSource(seed))})
	ui.Close()
	ctx.FatalIfErrorf(err)
}
