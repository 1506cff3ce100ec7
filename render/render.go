package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ratel-online/mantis/mantis/color"
	"github.com/ratel-online/mantis/mantis/game"
	"github.com/ratel-online/mantis/model"
)

// Standings renders one row per participant in turn order.
func Standings(set color.Set, snapshots []game.Snapshot, leader string) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Player", "Tank", "Score pile", "Score"})
	for _, snapshot := range snapshots {
		name := snapshot.Name
		if name == leader {
			name += " *"
		}
		t.AppendRow(table.Row{
			name,
			snapshot.Tank.Format(set),
			snapshot.ScorePile.Format(set),
			snapshot.ScoreTotal,
		})
	}
	t.SetStyle(table.StyleLight)
	return t.Render() + "\n"
}

func Summary(g model.Game) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Game %d (seed %d): %s after %d round(s)", g.ID, g.Seed, g.StateDesc, g.Round))
	t.AppendHeader(table.Row{"Player", "Kind", "Score"})
	for _, p := range g.Players {
		kind := "human"
		if p.Automated {
			kind = "bot"
		}
		t.AppendRow(table.Row{p.Name, kind, p.ScoreTotal})
	}
	if g.Winner != "" {
		t.AppendFooter(table.Row{"Winner", g.Winner, g.LeaderScore})
	}
	t.SetStyle(table.StyleLight)
	return t.Render() + "\n"
}
