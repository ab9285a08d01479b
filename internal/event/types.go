package event

import (
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"

	"github.com/google/uuid"
)

const (
	GameStarted    EventType = "GameStarted"
	EnemySpawned   EventType = "EnemySpawned"
	EnemyKilled    EventType = "EnemyKilled"  // убит турелью, награда начислена
	EnemyEscaped   EventType = "EnemyEscaped" // дошёл до конца пути, без награды
	EnemyRemoved   EventType = "EnemyRemoved" // снят с поля без награды и без побега (битые данные)
	SpawnSkipped   EventType = "SpawnSkipped"
	WavePrepared   EventType = "WavePrepared"
	WaveStarted    EventType = "WaveStarted" // все враги волны появились
	WaveCleared    EventType = "WaveCleared"
	ShotFired      EventType = "ShotFired"
	TurretPlaced   EventType = "TurretPlaced"
	TurretUpgraded EventType = "TurretUpgraded"
	CashChanged    EventType = "CashChanged"
	PauseToggled   EventType = "PauseToggled"
)

type GameStartedData struct {
	SessionID uuid.UUID
	MapName   string
	Cash      int
}

type EnemyData struct {
	Type     string
	Position geom.Vec2
	Reward   int
}

type EnemyRemovedData struct {
	Type    string
	MapName string
	Reason  string
}

type SpawnSkippedData struct {
	EnemyType string
	MapName   string
	Reason    string
}

type WaveData struct {
	Number  int
	Enemies int
}

type ShotData struct {
	TurretID uuid.UUID
	From, To geom.Vec2
	Damage   int
}

type TurretData struct {
	TurretID  uuid.UUID
	Type      string
	Position  geom.Vec2
	Attribute defs.Attribute // только для TurretUpgraded
	Level     int
}

type CashData struct {
	Cash  int
	Delta int
}

type PauseData struct {
	Paused bool
}
