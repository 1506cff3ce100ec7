package database

import (
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/mantis/config"
	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/game"
	"github.com/ratel-online/mantis/mantis/player"
	"github.com/ratel-online/mantis/model"
)

var gameIds int64 = 0
var games = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(consts.SweepInterval)
			Sweep(time.Now())
		}
	})
}

type ParticipantSpec struct {
	Name      string
	Automated bool
}

func Humans(names ...string) []ParticipantSpec {
	specs := make([]ParticipantSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, ParticipantSpec{Name: name})
	}
	return specs
}

// Bots asks for amount automated participants with generated names.
func Bots(amount int) []ParticipantSpec {
	specs := make([]ParticipantSpec, 0, amount)
	for i := 0; i < amount; i++ {
		specs = append(specs, ParticipantSpec{Automated: true})
	}
	return specs
}

// Setup validates the configuration and registers a new game. Humans take
// their turns before bots, each group in the order given.
func Setup(cfg config.Config, specs []ParticipantSpec) (*Game, error) {
	var humans, named []string
	unnamed := 0
	for _, spec := range specs {
		switch {
		case !spec.Automated:
			humans = append(humans, spec.Name)
		case spec.Name != "":
			named = append(named, spec.Name)
		default:
			unnamed++
		}
	}
	bots := len(named) + unnamed
	cfg.Humans, cfg.Bots = len(humans), bots
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	set, err := cfg.ColorSet()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	participants := player.CreateParticipants(humans, unnamed, rng, named...)
	if len(participants) != len(humans)+unnamed {
		return nil, consts.ErrorsInvalidConfiguration.With("not enough free bot names for %d bot(s)", unnamed)
	}
	participants = seatBots(participants, len(humans), specs, rng)
	automated := map[string]bool{}
	for _, p := range participants[len(humans):] {
		automated[p.Name] = true
	}

	engine, err := game.New(set, cfg.WinningScore, participants, rng)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	g := &Game{
		ID:         atomic.AddInt64(&gameIds, 1),
		Seed:       seed,
		Engine:     engine,
		CreatedAt:  now,
		ActiveTime: now,
		automated:  automated,
	}
	games.Set(g.ID, g)
	log.Infof("game %d created, %d human(s), %d bot(s), seed %d\n", g.ID, len(humans), bots, seed)
	return g, nil
}

// seatBots orders the bots as specs list them, explicitly named bots in their
// place and generated ones filling the rest.
func seatBots(participants []game.Participant, humans int, specs []ParticipantSpec, rng *rand.Rand) []game.Participant {
	seated := make([]game.Participant, 0, len(specs))
	seated = append(seated, participants[:humans]...)
	generated := participants[humans:]
	for _, spec := range specs {
		switch {
		case !spec.Automated:
		case spec.Name != "":
			seated = append(seated, player.NewBot(spec.Name, rng))
		default:
			seated = append(seated, generated[0])
			generated = generated[1:]
		}
	}
	return seated
}

func GetGame(gameId int64) *Game {
	if v, ok := games.Get(gameId); ok {
		return v.(*Game)
	}
	return nil
}

func GetGames() []*Game {
	list := make([]*Game, 0)
	games.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Game))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func DeleteGame(gameId int64) {
	games.Del(gameId)
}

func SubmitHumanDecision(gameId int64, name string, action consts.ActionID, target string) error {
	g := GetGame(gameId)
	if g == nil {
		return consts.ErrorsGameInvalid.With("no game %d", gameId)
	}
	return g.SubmitHumanDecision(name, action, target)
}

func AdvanceTurn(gameId int64) (game.TurnOutcome, error) {
	g := GetGame(gameId)
	if g == nil {
		return game.TurnOutcome{}, consts.ErrorsGameInvalid.With("no game %d", gameId)
	}
	return g.AdvanceTurn()
}

func Snapshot(gameId int64) (model.Game, error) {
	g := GetGame(gameId)
	if g == nil {
		return model.Game{}, consts.ErrorsGameInvalid.With("no game %d", gameId)
	}
	return g.Model(), nil
}

// Sweep drops finished games and games idle for longer than GameIdleTimeout.
func Sweep(now time.Time) int {
	removed := 0
	for _, g := range GetGames() {
		g.Lock()
		finished := g.Engine.State() == consts.StateGameOver
		idle := g.ActiveTime.Add(consts.GameIdleTimeout).Before(now)
		g.Unlock()
		if finished || idle {
			log.Infof("game %d removed, finished %v, idle %v\n", g.ID, finished, idle)
			DeleteGame(g.ID)
			removed++
		}
	}
	return removed
}

func summary(g *Game) string {
	return string(json.Marshal(g.model()))
}
