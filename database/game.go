package database

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/game"
	"github.com/ratel-online/mantis/model"
)

// Game is a handle on one registered match. Every call goes through its mutex,
// so a score or steal touching two players is never interleaved with another.
type Game struct {
	sync.Mutex

	ID         int64
	Seed       int64
	Engine     *game.Game
	CreatedAt  time.Time
	ActiveTime time.Time

	automated map[string]bool
}

func (g *Game) SubmitHumanDecision(name string, action consts.ActionID, target string) error {
	g.Lock()
	defer g.Unlock()
	g.ActiveTime = time.Now()
	return g.Engine.SubmitHumanDecision(name, action, target)
}

func (g *Game) AdvanceTurn() (game.TurnOutcome, error) {
	g.Lock()
	defer g.Unlock()
	g.ActiveTime = time.Now()
	outcome, err := g.Engine.AdvanceTurn()
	if err != nil {
		return outcome, err
	}
	if outcome.GameOver {
		log.Infof("game %d finished: %s\n", g.ID, summary(g))
	}
	return outcome, nil
}

func (g *Game) Automated(name string) bool {
	return g.automated[name]
}

func (g *Game) Model() model.Game {
	g.Lock()
	defer g.Unlock()
	return g.model()
}

func (g *Game) model() model.Game {
	engine := g.Engine
	set := engine.Set()

	colors := make([]string, 0, set.Len())
	for _, c := range set.Colors() {
		colors = append(colors, c.Name())
	}
	players := make([]model.Player, 0)
	for _, snapshot := range engine.Snapshots() {
		tank := map[string]int{}
		scorePile := map[string]int{}
		for _, c := range set.Colors() {
			tank[c.Name()] = snapshot.Tank.Get(c)
			scorePile[c.Name()] = snapshot.ScorePile.Get(c)
		}
		players = append(players, model.Player{
			Name:       snapshot.Name,
			Automated:  g.automated[snapshot.Name],
			Tank:       tank,
			ScorePile:  scorePile,
			ScoreTotal: snapshot.ScoreTotal,
		})
	}
	leader, leaderScore := engine.Leader()
	winner, _ := engine.Winner()
	awaiting, _ := engine.Awaiting()
	return model.Game{
		ID:           g.ID,
		Seed:         g.Seed,
		State:        int(engine.State()),
		StateDesc:    consts.States[engine.State()],
		Round:        engine.Round(),
		Turns:        engine.Turns(),
		WinningScore: engine.WinningScore(),
		Colors:       colors,
		Leader:       leader,
		LeaderScore:  leaderScore,
		Winner:       winner,
		Awaiting:     awaiting,
		Players:      players,
	}
}
