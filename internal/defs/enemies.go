package defs

import "fmt"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string  `yaml:"-"`
	Name   string  `yaml:"name"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"` // distance units per tick
	Reward int     `yaml:"reward"`
}

func (d EnemyDefinition) validate() error {
	if d.Health <= 0 {
		return fmt.Errorf("enemy %s: health must be positive, got %d", d.ID, d.Health)
	}
	if d.Speed < 0 {
		return fmt.Errorf("enemy %s: negative speed %v", d.ID, d.Speed)
	}
	if d.Reward < 0 {
		return fmt.Errorf("enemy %s: negative reward %d", d.ID, d.Reward)
	}
	return nil
}
