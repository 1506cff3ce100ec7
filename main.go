package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/mantis/config"
	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/database"
	"github.com/ratel-online/mantis/mantis/msg"
	"github.com/ratel-online/mantis/mantis/player"
	"github.com/ratel-online/mantis/mantis/ui"
	"github.com/ratel-online/mantis/render"
)

var (
	envFile = flag.String("env", ".env", "dotenv file with MANTIS_* settings")
	ask     = flag.Bool("ask", true, "prompt for players and winning score")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()
	if err := play(); err != nil && !errors.Is(err, io.EOF) {
		log.Error(err)
	}
}

func play() error {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	ui.Delay = cfg.Delay
	ui.Print(msg.Message.Welcome())

	humans := make([]string, 0)
	if *ask {
		if cfg, err = promptConfig(cfg); err != nil {
			return err
		}
		if humans, err = ui.PromptNames(cfg.Humans); err != nil {
			return err
		}
	} else {
		for i := 1; i <= cfg.Humans; i++ {
			humans = append(humans, fmt.Sprintf("Player %d", i))
		}
	}
	for _, name := range humans {
		ui.Print(msg.Message.Greet(name))
	}

	g, err := database.Setup(cfg, append(database.Humans(humans...), database.Bots(cfg.Bots)...))
	if err != nil {
		return err
	}
	defer database.DeleteGame(g.ID)
	ui.NewConsoleListener(g.Engine)
	ui.Print(msg.Message.Rules(cfg.WinningScore))

	for {
		outcome, err := g.AdvanceTurn()
		if err != nil {
			return err
		}
		if outcome.GameOver {
			break
		}
		if !outcome.Awaiting {
			continue
		}
		ui.Print(msg.Message.HumanPlayerTurnStarted(outcome.PlayerName))
		for {
			action, target, err := ui.PromptDecision(outcome.View)
			if err != nil {
				return err
			}
			err = g.SubmitHumanDecision(outcome.PlayerName, action, target)
			if err == nil {
				break
			}
			var e consts.Error
			if errors.As(err, &e) && e.Exit {
				return err
			}
			ui.Println(err.Error())
		}
	}
	ui.Print(render.Summary(g.Model()))
	return nil
}

func promptConfig(cfg config.Config) (config.Config, error) {
	var err error
	if cfg.Humans, err = ui.PromptIntegerWithDefault(0, consts.MaxHumans, cfg.Humans,
		fmt.Sprintf("How many humans are playing? (default %d)", cfg.Humans)); err != nil {
		return cfg, err
	}
	minBots := 0
	if cfg.Humans < 2 {
		minBots = 2 - cfg.Humans
	}
	bots := cfg.Bots
	if bots < minBots {
		bots = minBots
	}
	if cfg.Bots, err = ui.PromptIntegerWithDefault(minBots, player.MaxBots, bots,
		fmt.Sprintf("How many bots should join? (default %d)", bots)); err != nil {
		return cfg, err
	}
	if cfg.WinningScore, err = ui.PromptIntegerWithDefault(1, 1000, cfg.WinningScore,
		fmt.Sprintf("What score wins the game? (default %d)", cfg.WinningScore)); err != nil {
		return cfg, err
	}
	return cfg, nil
}
