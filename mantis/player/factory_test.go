package player_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/mantis/mantis/game"
	"github.com/ratel-online/mantis/mantis/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParticipants(t *testing.T) {
	t.Run("humans_come_first_then_bots", func(t *testing.T) {
		participants := player.CreateParticipants([]string{"Alice", "Bob"}, 3, rand.New(rand.NewSource(1)))
		require.Len(t, participants, 5)
		assert.Equal(t, "Alice", participants[0].Name)
		assert.Equal(t, "Bob", participants[1].Name)

		_, ok := participants[0].Policy.Decide(game.View{})
		assert.False(t, ok, "humans wait for a submitted decision")
		for _, bot := range participants[2:] {
			_, ok := bot.Policy.Decide(game.View{})
			assert.True(t, ok, "bots decide on their own")
		}
	})

	t.Run("bot_names_are_unique_and_avoid_human_names", func(t *testing.T) {
		participants := player.CreateParticipants([]string{"Jinx"}, player.MaxBots-1, rand.New(rand.NewSource(2)))
		names := map[string]bool{}
		for _, p := range participants {
			require.False(t, names[p.Name], p.Name)
			names[p.Name] = true
		}
		assert.Len(t, names, player.MaxBots)
	})

	t.Run("bot_names_avoid_reserved_names", func(t *testing.T) {
		reserved := []string{"Jinx", "Zoe", "Udyr"}
		for seed := int64(1); seed <= 50; seed++ {
			participants := player.CreateParticipants([]string{"Alice"}, player.MaxBots-len(reserved), rand.New(rand.NewSource(seed)), reserved...)
			require.Len(t, participants, player.MaxBots-len(reserved)+1)
			for _, p := range participants {
				require.NotContains(t, reserved, p.Name)
			}
		}
	})

	t.Run("new_bot_decides_on_its_own", func(t *testing.T) {
		bot := player.NewBot("Robo", rand.New(rand.NewSource(1)))
		assert.Equal(t, "Robo", bot.Name)
		_, ok := bot.Policy.Decide(game.View{})
		assert.True(t, ok)
	})

	t.Run("same_seed_same_bots", func(t *testing.T) {
		first := player.CreateParticipants(nil, 4, rand.New(rand.NewSource(9)))
		second := player.CreateParticipants(nil, 4, rand.New(rand.NewSource(9)))
		for i := range first {
			assert.Equal(t, first[i].Name, second[i].Name)
		}
	})
}
