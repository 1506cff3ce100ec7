package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
	"github.com/ratel-online/mantis/mantis/event"
	"github.com/ratel-online/mantis/mantis/game"
	"github.com/ratel-online/mantis/mantis/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPolicy struct {
	decisions []game.Decision
}

func (p *scriptedPolicy) Decide(view game.View) (game.Decision, bool) {
	if len(p.decisions) == 0 {
		return game.Score(), true
	}
	decision := p.decisions[0]
	p.decisions = p.decisions[1:]
	return decision, true
}

func (p *scriptedPolicy) Offer(decision game.Decision) bool {
	return false
}

func rgb(t *testing.T) color.Set {
	set, err := color.NewSet(color.Red, color.Green, color.Blue)
	require.NoError(t, err)
	return set
}

// full holds one unit of every color of rgb, so any front banks two points.
var full = game.Counts{color.Red: 1, color.Green: 1, color.Blue: 1}

func scripted(name string, tank game.Counts, decisions ...game.Decision) game.Participant {
	return game.Participant{
		Name:   name,
		Policy: &scriptedPolicy{decisions: decisions},
		State:  game.RestorePlayerState(name, tank, game.Counts{}),
	}
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bots := func() []game.Participant { return player.CreateParticipants(nil, 2, rng) }

	t.Run("rejects_a_non_positive_winning_score", func(t *testing.T) {
		_, err := game.New(rgb(t), 0, bots(), rng)
		require.True(t, errors.Is(err, consts.ErrorsInvalidConfiguration))
	})

	t.Run("rejects_a_single_participant", func(t *testing.T) {
		_, err := game.New(rgb(t), 10, player.CreateParticipants([]string{"Alice"}, 0, rng), rng)
		require.True(t, errors.Is(err, consts.ErrorsInvalidConfiguration))
	})

	t.Run("rejects_an_empty_color_set", func(t *testing.T) {
		_, err := game.New(color.Set{}, 10, bots(), rng)
		require.True(t, errors.Is(err, consts.ErrorsInvalidConfiguration))
	})

	t.Run("rejects_duplicate_names", func(t *testing.T) {
		_, err := game.New(rgb(t), 10, player.CreateParticipants([]string{"Alice", "Alice"}, 0, rng), rng)
		require.True(t, errors.Is(err, consts.ErrorsInvalidConfiguration))
	})

	t.Run("rejects_restored_states_holding_colors_out_of_play", func(t *testing.T) {
		_, err := game.New(rgb(t), 10, []game.Participant{
			scripted("A", game.Counts{color.Pink: 1}),
			scripted("B", full),
		}, rng)
		require.True(t, errors.Is(err, consts.ErrorsInvalidConfiguration))
	})

	t.Run("keeps_the_given_turn_order", func(t *testing.T) {
		g, err := game.New(rgb(t), 10, player.CreateParticipants([]string{"Alice", "Bob"}, 1, rng), rng)
		require.NoError(t, err)
		order := g.Participants()
		require.Len(t, order, 3)
		assert.Equal(t, []string{"Alice", "Bob"}, order[:2])
		assert.Equal(t, consts.StateSetup, g.State())
	})
}

func TestHumanTurn(t *testing.T) {
	newGame := func(t *testing.T) (*game.Game, *event.DummyListener) {
		rng := rand.New(rand.NewSource(3))
		g, err := game.New(rgb(t), 10, []game.Participant{
			{Name: "Alice", Policy: player.NewHumanPolicy(), State: game.RestorePlayerState("Alice", game.Counts{}, game.Counts{})},
			scripted("Bot", full),
		}, rng)
		require.NoError(t, err)
		listener := event.NewDummyListener()
		g.Events().AddListener(listener)
		return g, listener
	}

	t.Run("waits_for_the_human_with_the_card_back", func(t *testing.T) {
		g, listener := newGame(t)
		outcome, err := g.AdvanceTurn()
		require.NoError(t, err)
		require.True(t, outcome.Awaiting)
		assert.Equal(t, "Alice", outcome.PlayerName)
		assert.Equal(t, []string{"Bot"}, outcome.View.OpponentNames())

		drawn := listener.ReceivedPayloads()[1].(event.CardDrawnPayload)
		assert.Equal(t, drawn.Back, outcome.View.Back)

		name, awaiting := g.Awaiting()
		assert.True(t, awaiting)
		assert.Equal(t, "Alice", name)

		again, err := g.AdvanceTurn()
		require.NoError(t, err)
		assert.Equal(t, outcome.View.Back, again.View.Back, "the card is drawn once per turn")
	})

	t.Run("rejects_bad_submissions_without_changing_state", func(t *testing.T) {
		g, _ := newGame(t)
		_, err := g.AdvanceTurn()
		require.NoError(t, err)
		before := g.Snapshots()

		err = g.SubmitHumanDecision("Mallory", consts.ActionScore, "")
		assert.True(t, errors.Is(err, consts.ErrorsUnknownParticipant))
		err = g.SubmitHumanDecision("Bot", consts.ActionScore, "")
		assert.True(t, errors.Is(err, consts.ErrorsUnknownParticipant))
		err = g.SubmitHumanDecision("Alice", consts.ActionID(9), "")
		assert.True(t, errors.Is(err, consts.ErrorsInvalidDecision))
		err = g.SubmitHumanDecision("Alice", consts.ActionSteal, "Alice")
		assert.True(t, errors.Is(err, consts.ErrorsInvalidDecision))
		err = g.SubmitHumanDecision("Alice", consts.ActionSteal, "Nobody")
		assert.True(t, errors.Is(err, consts.ErrorsInvalidDecision))

		assert.Equal(t, before, g.Snapshots())
		outcome, err := g.AdvanceTurn()
		require.NoError(t, err)
		assert.True(t, outcome.Awaiting)
	})

	t.Run("infers_the_only_opponent_as_target", func(t *testing.T) {
		g, _ := newGame(t)
		_, err := g.AdvanceTurn()
		require.NoError(t, err)
		require.NoError(t, g.SubmitHumanDecision("Alice", consts.ActionSteal, ""))

		outcome, err := g.AdvanceTurn()
		require.NoError(t, err)
		require.False(t, outcome.Awaiting)
		assert.Equal(t, game.StealFrom("Bot"), outcome.Decision)
		assert.Equal(t, game.ResultStealSucceeded, outcome.Result.Kind)
		assert.Equal(t, 2, outcome.Result.Amount)

		alice, err := g.Snapshot("Alice")
		require.NoError(t, err)
		assert.Equal(t, 2, alice.Tank.Get(outcome.Card.Front()))
	})

	t.Run("submission_is_only_valid_while_waiting", func(t *testing.T) {
		g, _ := newGame(t)
		err := g.SubmitHumanDecision("Alice", consts.ActionScore, "")
		assert.True(t, errors.Is(err, consts.ErrorsUnknownParticipant))
	})

	t.Run("run_stops_at_the_human", func(t *testing.T) {
		g, _ := newGame(t)
		outcome, err := g.Run()
		require.NoError(t, err)
		assert.True(t, outcome.Awaiting)
	})
}

func TestWinCheck(t *testing.T) {
	t.Run("halts_mid_round_after_the_winning_turn", func(t *testing.T) {
		g, err := game.New(rgb(t), 2, []game.Participant{
			scripted("A", full),
			scripted("B", full),
			scripted("C", full),
		}, rand.New(rand.NewSource(4)))
		require.NoError(t, err)

		outcome, err := g.AdvanceTurn()
		require.NoError(t, err)
		assert.True(t, outcome.GameOver)
		assert.Equal(t, "A", outcome.WinnerName)
		assert.Equal(t, 2, outcome.WinningScore)
		assert.Equal(t, consts.StateGameOver, g.State())
		assert.Equal(t, 1, g.Round())
		assert.Equal(t, 1, g.Turns())

		winner, score := g.Winner()
		assert.Equal(t, "A", winner)
		assert.Equal(t, 2, score)

		b, err := g.Snapshot("B")
		require.NoError(t, err)
		assert.Equal(t, full, b.Tank, "B never acts")

		_, err = g.AdvanceTurn()
		assert.True(t, errors.Is(err, consts.ErrorsGameOver))
		err = g.SubmitHumanDecision("B", consts.ActionScore, "")
		assert.True(t, errors.Is(err, consts.ErrorsGameOver))
	})

	t.Run("leader_changes_only_on_a_strictly_higher_score", func(t *testing.T) {
		g, err := game.New(rgb(t), 100, []game.Participant{
			scripted("A", full),
			scripted("B", full),
		}, rand.New(rand.NewSource(4)))
		require.NoError(t, err)

		_, err = g.AdvanceTurn()
		require.NoError(t, err)
		_, err = g.AdvanceTurn()
		require.NoError(t, err)

		leader, score := g.Leader()
		assert.Equal(t, "A", leader)
		assert.Equal(t, 2, score)
		winner, _ := g.Winner()
		assert.Empty(t, winner)
	})
}

func TestRounds(t *testing.T) {
	g, err := game.New(rgb(t), 100, []game.Participant{
		scripted("A", game.Counts{}),
		scripted("B", game.Counts{}),
	}, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	listener := event.NewDummyListener()
	g.Events().RoundStarted.AddListener(listener)

	var actors []string
	for i := 0; i < 4; i++ {
		outcome, err := g.AdvanceTurn()
		require.NoError(t, err)
		actors = append(actors, outcome.PlayerName)
	}

	assert.Equal(t, []string{"A", "B", "A", "B"}, actors)
	assert.Equal(t, 3, g.Round())
	assert.Equal(t, []interface{}{
		event.RoundStartedPayload{Round: 1},
		event.RoundStartedPayload{Round: 2},
		event.RoundStartedPayload{Round: 3},
	}, listener.ReceivedPayloads())
}

func TestTurnEvents(t *testing.T) {
	g, err := game.New(rgb(t), 100, []game.Participant{
		scripted("A", full),
		scripted("B", game.Counts{}, game.StealFrom("A")),
	}, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	listener := event.NewDummyListener()
	g.Events().AddListener(listener)

	first, err := g.AdvanceTurn()
	require.NoError(t, err)
	second, err := g.AdvanceTurn()
	require.NoError(t, err)

	firstFront := first.Card.Front()
	secondFront := second.Card.Front()
	payloads := listener.ReceivedPayloads()
	require.Len(t, payloads, 9)
	assert.Equal(t, event.RoundStartedPayload{Round: 1}, payloads[0])
	assert.Equal(t, event.CardDrawnPayload{PlayerName: "A", Round: 1, Back: first.Card.Back()}, payloads[1])
	assert.Equal(t, event.CardRevealedPayload{PlayerName: "A", Front: firstFront, Action: consts.ActionScore}, payloads[2])
	assert.Equal(t, event.MovedToScorePilePayload{PlayerName: "A", Color: firstFront, Amount: 2}, payloads[3])
	assert.Equal(t, event.LeaderChangedPayload{PlayerName: "A", Score: 2}, payloads[4])
	assert.Equal(t, event.CardDrawnPayload{PlayerName: "B", Round: 1, Back: second.Card.Back()}, payloads[5])
	assert.Equal(t, event.CardRevealedPayload{PlayerName: "B", Front: secondFront, Action: consts.ActionSteal, TargetName: "A"}, payloads[6])
	if secondFront == firstFront {
		assert.Equal(t, event.StealFailedPayload{PlayerName: "B", TargetName: "A", Color: secondFront}, payloads[7])
	} else {
		assert.Equal(t, event.StealSucceededPayload{PlayerName: "B", TargetName: "A", Color: secondFront, Amount: 2}, payloads[7])
	}
	assert.Equal(t, event.RoundStartedPayload{Round: 2}, payloads[8])
}

func playBots(t *testing.T, seed int64, bots int, winningScore int) (string, int, int) {
	rng := rand.New(rand.NewSource(seed))
	g, err := game.New(color.DefaultSet(), winningScore, player.CreateParticipants(nil, bots, rng), rng)
	require.NoError(t, err)
	outcome, err := g.Run()
	require.NoError(t, err)
	require.True(t, outcome.GameOver)
	require.Equal(t, consts.StateGameOver, g.State())
	return outcome.WinnerName, outcome.WinningScore, g.Turns()
}

func TestSeededGamesAreReproducible(t *testing.T) {
	winner, score, turns := playBots(t, 42, 2, consts.DefaultWinningScore)
	for i := 0; i < 3; i++ {
		againWinner, againScore, againTurns := playBots(t, 42, 2, consts.DefaultWinningScore)
		assert.Equal(t, winner, againWinner)
		assert.Equal(t, score, againScore)
		assert.Equal(t, turns, againTurns)
	}
	assert.GreaterOrEqual(t, score, consts.DefaultWinningScore)
}

func TestGamesTerminate(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for bots := 2; bots <= 4; bots++ {
			_, score, _ := playBots(t, seed, bots, 1+int(seed%12))
			require.GreaterOrEqual(t, score, 1+int(seed%12))
		}
	}
}

func TestScoreTotalsOnlyGrow(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	g, err := game.New(color.DefaultSet(), 25, player.CreateParticipants(nil, 3, rng), rng)
	require.NoError(t, err)

	previous := g.Snapshots()
	for g.State() != consts.StateGameOver {
		_, err := g.AdvanceTurn()
		require.NoError(t, err)
		current := g.Snapshots()
		for i, snapshot := range current {
			require.Equal(t, snapshot.ScorePile.Total(), snapshot.ScoreTotal)
			require.GreaterOrEqual(t, snapshot.ScoreTotal, previous[i].ScoreTotal)
			for c := range snapshot.ScorePile {
				require.GreaterOrEqual(t, snapshot.ScorePile[c], previous[i].ScorePile[c])
			}
		}
		previous = current
	}
}
