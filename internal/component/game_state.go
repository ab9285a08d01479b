package component

// GameState - корневое состояние партии. Cash changes only through purchases, upgrades and kill rewards.
type GameState struct {
	Cash    int
	Paused  bool
	MapName string
	Started bool
	// Pending is the turret type bought but not yet placed; "" when nothing is pending.
	Pending string
}
