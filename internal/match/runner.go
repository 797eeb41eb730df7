package match

import (
	"errors"
	"fmt"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/game"
	"skull-toolbox/internal/player"

	"github.com/sirupsen/logrus"
)

var (
	ErrStepLimit         = errors.New("match did not finish within the step limit")
	ErrTooManyRejections = errors.New("too many rejected responses in a row")
)

// Limits bounds a match. Zero values fall back to the defaults.
type Limits struct {
	MaxSteps      int
	MaxRejections int
}

const (
	defaultMaxSteps      = 10000
	defaultMaxRejections = 3
)

// Result summarizes a finished (or abandoned) match.
type Result struct {
	Winner     int
	WinnerName string
	Finished   bool
	Steps      int
	Rejections int
	Scores     []int
	// Ending is the terminal event, nil when the match was abandoned.
	Ending events.Event
}

// Runner drives one game: it drains events, publishes them and asks the
// seated player for every input request.
type Runner struct {
	game      *game.Game
	players   []player.Player
	events    *events.Manager
	log       logrus.FieldLogger
	limits    Limits
	observers []ResponseObserver
}

// ResponseObserver is told about every response the game accepted.
type ResponseObserver interface {
	Responded(seat int, resp game.Response)
}

// Observe registers o for accepted responses.
func (r *Runner) Observe(o ResponseObserver) {
	r.observers = append(r.observers, o)
}

// NewRunner seats players in order and subscribes them to the event
// manager. The number of players must match the game.
func NewRunner(g *game.Game, players []player.Player, em *events.Manager, log logrus.FieldLogger, limits Limits) (*Runner, error) {
	if len(players) != g.PlayerCount() {
		return nil, fmt.Errorf("game has %d seats but %d players were given", g.PlayerCount(), len(players))
	}
	if limits.MaxSteps <= 0 {
		limits.MaxSteps = defaultMaxSteps
	}
	if limits.MaxRejections <= 0 {
		limits.MaxRejections = defaultMaxRejections
	}

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
		if names[i] == "" {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}
	for i, p := range players {
		p.Setup(i, names)
		em.Subscribe(p)
	}
	return &Runner{
		game:    g,
		players: players,
		events:  em,
		log:     log,
		limits:  limits,
	}, nil
}

// Run plays the game to the end. The result is filled in as far as the
// match got even when an error is returned.
func (r *Runner) Run() (Result, error) {
	res := Result{Winner: -1}

	for res.Steps < r.limits.MaxSteps {
		res.Steps++
		ev := r.game.WhatNext()
		r.log.WithField("step", res.Steps).Debugf("Event: %s", ev)
		r.events.Publish(ev)

		if events.IsTerminal(ev) {
			winner, _ := r.game.Winner()
			res.Winner, res.WinnerName = winner, r.players[winner].Name()
			res.Finished, res.Ending = true, ev
			res.Scores = r.game.Scores()
			r.log.WithFields(logrus.Fields{"winner": res.WinnerName, "steps": res.Steps}).Info("Match finished")
			return res, nil
		}
		req, ok := ev.(events.InputRequired)
		if !ok {
			continue
		}
		rejected, err := r.ask(req)
		res.Rejections += rejected
		if err != nil {
			res.Scores = r.game.Scores()
			return res, err
		}
	}
	res.Scores = r.game.Scores()
	return res, ErrStepLimit
}

// ask collects a response from the requested player, re-asking after each
// rejection up to the configured limit.
func (r *Runner) ask(req events.InputRequired) (int, error) {
	p := r.players[req.Player]
	for rejected := 0; ; rejected++ {
		if rejected == r.limits.MaxRejections {
			return rejected, fmt.Errorf("%s: %w", p.Name(), ErrTooManyRejections)
		}
		resp, err := p.Decide(r.game, req)
		if err != nil {
			return rejected, fmt.Errorf("%s couldn't decide: %w", p.Name(), err)
		}
		err = r.game.Respond(resp)
		if err == nil {
			r.log.WithFields(logrus.Fields{"player": p.Name(), "response": resp}).Debug("Response accepted")
			for _, o := range r.observers {
				o.Responded(req.Player, resp)
			}
			return rejected, nil
		}
		var rerr *game.ResponseError
		if !errors.As(err, &rerr) {
			return rejected, err
		}
		r.log.WithFields(logrus.Fields{"player": p.Name(), "response": resp, "error": err}).Info("Response rejected")
		if l, ok := p.(player.RejectionListener); ok {
			l.Rejected(resp, err)
		}
	}
}
