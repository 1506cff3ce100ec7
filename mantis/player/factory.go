package player

import (
	"math/rand"

	"github.com/ratel-online/mantis/mantis/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

const MaxBots = 26

// CreateParticipants lists humans first, in the given order, followed by bots.
// Generated bot names avoid the human names and every reserved name.
func CreateParticipants(humanNames []string, numberOfBots int, rng *rand.Rand, reserved ...string) []game.Participant {
	participants := make([]game.Participant, 0, len(humanNames)+numberOfBots)
	for _, name := range humanNames {
		participants = append(participants, game.Participant{Name: name, Policy: NewHumanPolicy()})
	}
	taken := make(map[string]bool, len(humanNames))
	for _, name := range humanNames {
		taken[name] = true
	}
	for _, name := range reserved {
		taken[name] = true
	}
	for _, name := range generateBotNames(numberOfBots, taken, rng) {
		participants = append(participants, NewBot(name, rng))
	}
	return participants
}

func NewBot(name string, rng *rand.Rand) game.Participant {
	return game.Participant{Name: name, Policy: NewAutomatedPolicy(rng)}
}

func generateBotNames(amount int, taken map[string]bool, rng *rand.Rand) []string {
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	bots := make([]string, 0, amount)
	for _, name := range names {
		if len(bots) == amount {
			break
		}
		if !taken[name] {
			bots = append(bots, name)
		}
	}
	return bots
}
