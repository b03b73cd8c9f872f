package component

type MatchState int

const (
	MatchTitle MatchState = iota
	MatchServe
	MatchPlaying
	MatchOver
)

func (s MatchState) String() string {
	switch s {
	case MatchTitle:
		return "title"
	case MatchServe:
		return "serve"
	case MatchPlaying:
		return "playing"
	case MatchOver:
		return "over"
	}
	return "unknown"
}

// Match is the singleton scoreboard.
type Match struct {
	State       MatchState
	ScoreLeft   int
	ScoreRight  int
	PointsToWin int
	// ServeDir is the X direction of the next launch; 0 picks one at random.
	ServeDir float64
	Winner   Side
	// StartRequested is set by the start screen and consumed by the match
	// system.
	StartRequested bool
}

func (m *Match) TotalScore() int {
	return m.ScoreLeft + m.ScoreRight
}

var MatchComponent = NewComponent[Match]()
