package model

type Player struct {
	Name       string         `json:"name"`
	Automated  bool           `json:"automated"`
	Tank       map[string]int `json:"tank"`
	ScorePile  map[string]int `json:"scorePile"`
	ScoreTotal int            `json:"scoreTotal"`
}

type Game struct {
	ID           int64    `json:"id"`
	Seed         int64    `json:"seed"`
	State        int      `json:"state"`
	StateDesc    string   `json:"stateDesc"`
	Round        int      `json:"round"`
	Turns        int      `json:"turns"`
	WinningScore int      `json:"winningScore"`
	Colors       []string `json:"colors"`
	Leader       string   `json:"leader"`
	LeaderScore  int      `json:"leaderScore"`
	Winner       string   `json:"winner,omitempty"`
	Awaiting     string   `json:"awaiting,omitempty"`
	Players      []Player `json:"players"`
}
