// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	TickRate     = 60 // фиксированных шагов симуляции в секунду
	TickDuration = 1.0 / TickRate
	MaxDeltaTime = 0.25 // больше не догоняем, иначе после паузы окна будет "спираль"

	StartingCash = 100
	DefaultMap   = "Stair"

	// Размещение турелей
	MinTurretSpacing = 50.0
	PathClearance    = 30.0

	// Волны
	SpawnStagger = 1.0 // секунд между врагами одного типа

	MaxUpgradeTier = 3

	ShotEffectDuration = 0.1 // seconds
	TimeEpsilon        = 1e-9

	TurretRadius      = 15.0 // для клика по турели и отрисовки
	EnemyRadius       = 10.0
	HealthBarWidth    = 24.0
	HealthBarHeight   = 4.0
	PathStrokeWidth   = 2.0
	EffectStrokeWidth = 1.5

	MetricsNamespace = "pathdefense"
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	PathColor          = color.RGBA{255, 255, 255, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	PausedOverlayColor = color.RGBA{0, 0, 0, 140}
	ValidPreviewColor  = color.RGBA{50, 205, 50, 255}
	InvalidPreview     = color.RGBA{220, 60, 60, 255}
	HealthBarBack      = color.RGBA{90, 20, 20, 255}
	HealthBarFront     = color.RGBA{50, 205, 50, 255}
	SelectedColor      = color.RGBA{255, 215, 0, 255}
	TurretColors       = map[string]color.RGBA{
		"basic":  {50, 100, 255, 255},
		"sniper": {50, 200, 50, 255},
	}
	EnemyColors = map[string]color.RGBA{
		"basic":  {200, 200, 200, 255},
		"fast":   {255, 160, 40, 255},
		"strong": {180, 50, 230, 255},
	}
	FallbackColor = color.RGBA{128, 128, 128, 255}
)
