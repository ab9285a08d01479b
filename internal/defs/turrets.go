// internal/defs/turrets.go
package defs

import (
	"fmt"
	"math"
)

// Attribute names an upgradable turret stat.
type Attribute string

const (
	AttrRange  Attribute = "range"
	AttrRate   Attribute = "rate"
	AttrDamage Attribute = "damage"
)

// Attributes lists the upgradable stats in display order.
var Attributes = []Attribute{AttrRange, AttrRate, AttrDamage}

// ParseAttribute validates an attribute name coming from a command.
func ParseAttribute(s string) (Attribute, error) {
	for _, a := range Attributes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown upgrade attribute %q", s)
}

// UpgradeTier - одна ступень улучшения: цена и абсолютное новое значение характеристики.
type UpgradeTier struct {
	Cost  int     `yaml:"cost"`
	Value float64 `yaml:"value"`
}

// TurretDefinition holds all the static data for a specific type of turret.
type TurretDefinition struct {
	ID       string                      `yaml:"-"`
	Name     string                      `yaml:"name"`
	Cost     int                         `yaml:"cost"`
	Range    float64                     `yaml:"range"`
	Rate     float64                     `yaml:"rate"` // Shots per second
	Damage   int                         `yaml:"damage"`
	Upgrades map[Attribute][]UpgradeTier `yaml:"upgrades"`
}

// Tier returns the upgrade bought when moving from currentLevel to currentLevel+1.
func (d TurretDefinition) Tier(attr Attribute, currentLevel int) (UpgradeTier, bool) {
	tiers := d.Upgrades[attr]
	if currentLevel < 0 || currentLevel >= len(tiers) {
		return UpgradeTier{}, false
	}
	return tiers[currentLevel], true
}

func (d TurretDefinition) validate(maxTier int) error {
	if d.Cost < 0 {
		return fmt.Errorf("turret %s: negative cost %d", d.ID, d.Cost)
	}
	if d.Rate <= 0 {
		return fmt.Errorf("turret %s: rate must be positive, got %v", d.ID, d.Rate)
	}
	if d.Range <= 0 {
		return fmt.Errorf("turret %s: range must be positive, got %v", d.ID, d.Range)
	}
	for _, attr := range Attributes {
		tiers := d.Upgrades[attr]
		if len(tiers) != maxTier {
			return fmt.Errorf("turret %s: %s needs %d upgrade tiers, got %d", d.ID, attr, maxTier, len(tiers))
		}
		for i, tier := range tiers {
			if tier.Cost < 0 {
				return fmt.Errorf("turret %s: %s tier %d has negative cost", d.ID, attr, i+1)
			}
			if attr == AttrRate && tier.Value <= 0 {
				return fmt.Errorf("turret %s: rate tier %d must be positive", d.ID, i+1)
			}
			// урон целочисленный, дробная ступень молча обрезалась бы
			if attr == AttrDamage && tier.Value != math.Trunc(tier.Value) {
				return fmt.Errorf("turret %s: damage tier %d must be a whole number, got %v", d.ID, i+1, tier.Value)
			}
		}
	}
	for attr := range d.Upgrades {
		if _, err := ParseAttribute(string(attr)); err != nil {
			return fmt.Errorf("turret %s: %w", d.ID, err)
		}
	}
	return nil
}
