package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/card"
	"github.com/ratel-online/mantis/mantis/color"
	"github.com/ratel-online/mantis/mantis/event"
)

type participant struct {
	state  *PlayerState
	policy Policy
}

type turn struct {
	player *participant
	card   card.Card
}

// TurnOutcome is either a resolved turn or, when Awaiting is set, the view a
// human needs to decide on.
type TurnOutcome struct {
	Awaiting   bool
	PlayerName string
	Round      int
	View       View

	Card     card.Card
	Decision Decision
	Result   Result

	GameOver     bool
	WinnerName   string
	WinningScore int
}

// Game is the turn engine of one match. It is not safe for concurrent use.
type Game struct {
	set          color.Set
	winningScore int
	rng          *rand.Rand
	events       *event.Emitters

	players map[string]*participant
	order   []string
	cycler  *Cycler

	state       consts.StateID
	round       int
	turns       int
	leaderName  string
	leaderScore int
	pending     *turn
	awaiting    bool
}

func New(set color.Set, winningScore int, participants []Participant, rng *rand.Rand) (*Game, error) {
	if set.Len() < consts.MinColors {
		return nil, consts.ErrorsInvalidConfiguration.With("need at least %d colors", consts.MinColors)
	}
	if winningScore <= 0 {
		return nil, consts.ErrorsInvalidConfiguration.With("winning score must be positive, got %d", winningScore)
	}
	if len(participants) < 2 {
		return nil, consts.ErrorsInvalidConfiguration.With("need at least 2 participants, got %d", len(participants))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		set:          set,
		winningScore: winningScore,
		rng:          rng,
		events:       event.NewEmitters(),
		players:      make(map[string]*participant, len(participants)),
		order:        make([]string, 0, len(participants)),
		state:        consts.StateSetup,
	}
	for _, spec := range participants {
		if spec.Name == "" {
			return nil, consts.ErrorsInvalidConfiguration.With("participant name is empty")
		}
		if spec.Policy == nil {
			return nil, consts.ErrorsInvalidConfiguration.With("%s has no policy", spec.Name)
		}
		if _, exists := g.players[spec.Name]; exists {
			return nil, consts.ErrorsInvalidConfiguration.With("duplicate participant %s", spec.Name)
		}
		state := spec.State
		if state == nil {
			state = NewPlayerState(spec.Name, set, rng)
		} else if state.Name() != spec.Name {
			return nil, consts.ErrorsInvalidConfiguration.With("state of %s is named %s", spec.Name, state.Name())
		} else if c, ok := foreignColor(set, state); ok {
			return nil, consts.ErrorsInvalidConfiguration.With("%s holds %s, which is not in play", spec.Name, c)
		}
		g.players[spec.Name] = &participant{state: state, policy: spec.Policy}
		g.order = append(g.order, spec.Name)
	}
	g.cycler = NewCycler(g.order)
	return g, nil
}

// foreignColor finds a color held by state outside set.
func foreignColor(set color.Set, state *PlayerState) (color.Color, bool) {
	tank, scorePile := state.Tank(), state.ScorePile()
	for i := 0; i < color.Count; i++ {
		c := color.Color(i)
		if !set.Contains(c) && (tank.Get(c) > 0 || scorePile.Get(c) > 0) {
			return c, true
		}
	}
	return 0, false
}

func (g *Game) Events() *event.Emitters {
	return g.events
}

func (g *Game) Set() color.Set {
	return g.set
}

func (g *Game) WinningScore() int {
	return g.winningScore
}

func (g *Game) State() consts.StateID {
	return g.state
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Leader() (string, int) {
	return g.leaderName, g.leaderScore
}

// Winner is empty until the game is over.
func (g *Game) Winner() (string, int) {
	if g.state != consts.StateGameOver {
		return "", 0
	}
	return g.leaderName, g.leaderScore
}

func (g *Game) Participants() []string {
	order := make([]string, len(g.order))
	copy(order, g.order)
	return order
}

// Awaiting names the participant the game is blocked on, if any.
func (g *Game) Awaiting() (string, bool) {
	if !g.awaiting || g.pending == nil {
		return "", false
	}
	return g.pending.player.state.Name(), true
}

func (g *Game) Snapshot(name string) (Snapshot, error) {
	p, ok := g.players[name]
	if !ok {
		return Snapshot{}, consts.ErrorsUnknownParticipant.With("%s is not in this game", name)
	}
	return p.state.Snapshot(), nil
}

func (g *Game) Snapshots() []Snapshot {
	snapshots := make([]Snapshot, 0, len(g.order))
	for _, name := range g.order {
		snapshots = append(snapshots, g.players[name].state.Snapshot())
	}
	return snapshots
}

// AdvanceTurn plays the next turn. The card is drawn once per turn and kept
// while the active participant's policy is waiting on a decision.
func (g *Game) AdvanceTurn() (TurnOutcome, error) {
	if g.state == consts.StateGameOver {
		return TurnOutcome{}, consts.ErrorsGameOver.With("%s already won", g.leaderName)
	}
	if g.state == consts.StateSetup {
		g.state = consts.StateRoundInProgress
		g.round = 1
		g.events.RoundStarted.Emit(event.RoundStartedPayload{Round: g.round})
	}
	if g.pending == nil {
		p := g.players[g.cycler.Next()]
		g.pending = &turn{player: p, card: card.Draw(g.rng, g.set)}
		g.events.CardDrawn.Emit(event.CardDrawnPayload{
			PlayerName: p.state.Name(),
			Round:      g.round,
			Back:       g.pending.card.Back(),
		})
	}

	t := g.pending
	view := g.view(t.player)
	decision, ok := t.player.policy.Decide(view)
	if !ok {
		g.awaiting = true
		return TurnOutcome{
			Awaiting:   true,
			PlayerName: t.player.state.Name(),
			Round:      g.round,
			View:       view,
		}, nil
	}
	decision, err := g.validate(t.player, decision)
	if err != nil {
		return TurnOutcome{}, err
	}
	g.awaiting = false
	g.pending = nil
	return g.resolve(t, decision), nil
}

// SubmitHumanDecision hands a decision to the participant the game is waiting
// on. Nothing changes when it is rejected.
func (g *Game) SubmitHumanDecision(name string, action consts.ActionID, target string) error {
	if g.state == consts.StateGameOver {
		return consts.ErrorsGameOver.With("%s already won", g.leaderName)
	}
	p, ok := g.players[name]
	if !ok {
		return consts.ErrorsUnknownParticipant.With("%s is not in this game", name)
	}
	if !g.awaiting || g.pending == nil || g.pending.player != p {
		return consts.ErrorsUnknownParticipant.With("not waiting on %s", name)
	}
	decision, err := g.validate(p, Decision{Action: action, Target: target})
	if err != nil {
		return err
	}
	if !p.policy.Offer(decision) {
		return consts.ErrorsUnknownParticipant.With("%s does not take submitted decisions", name)
	}
	return nil
}

// Run advances until the game is over or a participant has to be asked.
func (g *Game) Run() (TurnOutcome, error) {
	for {
		outcome, err := g.AdvanceTurn()
		if err != nil || outcome.Awaiting || outcome.GameOver {
			return outcome, err
		}
	}
}

func (g *Game) view(p *participant) View {
	opponents := make([]Snapshot, 0, len(g.order)-1)
	for _, name := range g.order {
		if name != p.state.Name() {
			opponents = append(opponents, g.players[name].state.Snapshot())
		}
	}
	return View{
		Round:     g.round,
		Back:      g.pending.card.Back(),
		Self:      p.state.Snapshot(),
		Opponents: opponents,
	}
}

func (g *Game) validate(p *participant, decision Decision) (Decision, error) {
	switch decision.Action {
	case consts.ActionScore:
		return Score(), nil
	case consts.ActionSteal:
	default:
		return Decision{}, consts.ErrorsInvalidDecision.With("unknown action %d", int(decision.Action))
	}
	self := p.state.Name()
	if decision.Target == "" {
		if len(g.order) != 2 {
			return Decision{}, consts.ErrorsInvalidDecision.With("choose whom %s steals from", self)
		}
		for _, name := range g.order {
			if name != self {
				return StealFrom(name), nil
			}
		}
	}
	if decision.Target == self {
		return Decision{}, consts.ErrorsInvalidDecision.With("%s cannot steal from itself", self)
	}
	if _, ok := g.players[decision.Target]; !ok {
		return Decision{}, consts.ErrorsInvalidDecision.With("%s is not an opponent", decision.Target)
	}
	return decision, nil
}

func (g *Game) resolve(t *turn, decision Decision) TurnOutcome {
	actor := t.player.state
	front := t.card.Front()
	g.events.CardRevealed.Emit(event.CardRevealedPayload{
		PlayerName: actor.Name(),
		Front:      front,
		Action:     decision.Action,
		TargetName: decision.Target,
	})

	var result Result
	switch decision.Action {
	case consts.ActionScore:
		result = actor.Score(front)
	case consts.ActionSteal:
		// validated above, the target exists and differs from the actor
		result, _ = actor.Steal(g.players[decision.Target].state, front)
	}
	g.notify(actor.Name(), result)
	g.turns++

	outcome := TurnOutcome{
		PlayerName: actor.Name(),
		Round:      g.round,
		Card:       t.card,
		Decision:   decision,
		Result:     result,
	}

	if total := actor.ScoreTotal(); total > g.leaderScore {
		g.leaderName = actor.Name()
		g.leaderScore = total
		g.events.LeaderChanged.Emit(event.LeaderChangedPayload{PlayerName: g.leaderName, Score: g.leaderScore})
	}
	if g.leaderScore >= g.winningScore {
		g.state = consts.StateGameOver
		g.events.GameOver.Emit(event.GameOverPayload{
			WinnerName:   g.leaderName,
			WinningScore: g.leaderScore,
			Round:        g.round,
		})
		outcome.GameOver = true
		outcome.WinnerName = g.leaderName
		outcome.WinningScore = g.leaderScore
		return outcome
	}
	if g.cycler.Last() {
		g.round++
		g.events.RoundStarted.Emit(event.RoundStartedPayload{Round: g.round})
	}
	return outcome
}

func (g *Game) notify(name string, result Result) {
	switch result.Kind {
	case ResultAddedToTank:
		g.events.AddedToTank.Emit(event.AddedToTankPayload{PlayerName: name, Color: result.Color})
	case ResultMovedToScorePile:
		g.events.MovedToScorePile.Emit(event.MovedToScorePilePayload{PlayerName: name, Color: result.Color, Amount: result.Amount})
	case ResultStealSucceeded:
		g.events.StealSucceeded.Emit(event.StealSucceededPayload{PlayerName: name, TargetName: result.Target, Color: result.Color, Amount: result.Amount})
	case ResultStealFailed:
		g.events.StealFailed.Emit(event.StealFailedPayload{PlayerName: name, TargetName: result.Target, Color: result.Color})
	}
}
