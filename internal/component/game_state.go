// internal/component/game_state.go
package component

// Phase — top level state of a run
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState holds the player's economy. Gold and castle health only change
// through the methods below.
type GameState struct {
	Phase        Phase
	CastleHealth int
	Gold         int
}

func NewGameState(castleHealth, gold int) *GameState {
	return &GameState{Phase: Running, CastleHealth: castleHealth, Gold: gold}
}

// Spend deducts cost if the player can afford it.
func (s *GameState) Spend(cost int) bool {
	if cost < 0 || s.Gold < cost {
		return false
	}
	s.Gold -= cost
	return true
}

// Earn credits a kill reward. Non-positive amounts are ignored.
func (s *GameState) Earn(amount int) {
	if amount > 0 {
		s.Gold += amount
	}
}

// Breach costs one unit of castle health.
func (s *GameState) Breach() {
	if s.CastleHealth > 0 {
		s.CastleHealth--
	}
}

// CheckGameOver moves the run to GameOver once the castle has fallen.
// Reports whether the transition happened on this call.
func (s *GameState) CheckGameOver() bool {
	if s.Phase == GameOver || s.CastleHealth > 0 {
		return false
	}
	s.Phase = GameOver
	return true
}

func (s *GameState) IsOver() bool {
	return s.Phase == GameOver
}
