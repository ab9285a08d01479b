// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/pkg/geom"

	"github.com/google/uuid"
)

// PurchaseTurret pays for a turret of typeID and arms it for placement.
// Only one purchase may be pending at a time.
func (s *Simulation) PurchaseTurret(typeID string) error {
	st := &s.Registry.State
	if !st.Started {
		return ErrNotStarted
	}
	def, ok := s.Catalog.Turret(typeID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTurretType, typeID)
	}
	if st.Pending != "" {
		return fmt.Errorf("%w: %s", ErrSelectionPending, st.Pending)
	}
	if st.Cash < def.Cost {
		logging.Debugf("Not enough cash for %s: need %d, have %d", typeID, def.Cost, st.Cash)
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCash, typeID, def.Cost, st.Cash)
	}

	s.addCash(-def.Cost)
	st.Pending = typeID
	logging.Debugf("Purchased %s, cash %d", typeID, st.Cash)
	return nil
}

// CancelPurchase refunds the pending selection.
func (s *Simulation) CancelPurchase() error {
	st := &s.Registry.State
	if st.Pending == "" {
		return ErrNoPendingSelection
	}
	def, ok := s.Catalog.Turret(st.Pending)
	st.Pending = ""
	if ok {
		s.addCash(def.Cost)
	}
	return nil
}

// PendingSelection returns the purchased, not yet placed turret type.
func (s *Simulation) PendingSelection() (string, bool) {
	p := s.Registry.State.Pending
	return p, p != ""
}

// IsValidPlacement reports whether a turret could be placed at (x, y) on the current map.
func (s *Simulation) IsValidPlacement(x, y float64) bool {
	if !s.Registry.State.Started {
		return false
	}
	return s.opts.Placement.IsValidPlacement(geom.V(x, y), s.path, s.Registry.Turrets)
}

// PlaceTurret places the pending turret at (x, y). An invalid position keeps
// the selection pending.
func (s *Simulation) PlaceTurret(x, y float64) (uuid.UUID, error) {
	st := &s.Registry.State
	if !st.Started {
		return uuid.Nil, ErrNotStarted
	}
	if st.Pending == "" {
		return uuid.Nil, ErrNoPendingSelection
	}
	def, ok := s.Catalog.Turret(st.Pending)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownTurretType, st.Pending)
	}

	pos := geom.V(x, y)
	if err := s.opts.Placement.CheckPlacement(pos, s.path, s.Registry.Turrets); err != nil {
		logging.Debugf("Rejected placement at (%.0f, %.0f): %v", x, y, err)
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidPlacement, err)
	}

	turret := component.NewTurret(def, pos)
	s.Registry.AddTurret(turret)
	st.Pending = ""

	logging.Infof("Placed %s turret %s at (%.0f, %.0f)", def.ID, turret.ID, x, y)
	s.dispatch(event.TurretPlaced, event.TurretData{TurretID: turret.ID, Type: def.ID, Position: pos})
	return turret.ID, nil
}

// UpgradeTurret buys the next tier of attr for turret id. The attribute is set
// to the tier's absolute value from the catalog.
func (s *Simulation) UpgradeTurret(id uuid.UUID, attr defs.Attribute) error {
	turret, def, err := s.lookupTurret(id)
	if err != nil {
		return err
	}
	if _, err := defs.ParseAttribute(string(attr)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}

	level := turret.Levels.Get(attr)
	tier, ok := def.Tier(attr, level)
	if !ok || level >= config.MaxUpgradeTier {
		return fmt.Errorf("%w: %s %s", ErrMaxTier, turret.Type, attr)
	}
	cash := s.Registry.State.Cash
	if cash < tier.Cost {
		return fmt.Errorf("%w: %s tier %d costs %d, have %d", ErrInsufficientCash, attr, level+1, tier.Cost, cash)
	}

	s.addCash(-tier.Cost)
	turret.ApplyTier(attr, tier)

	logging.Debugf("Upgraded %s of turret %s to tier %d (%v)", attr, turret.ID, level+1, tier.Value)
	s.dispatch(event.TurretUpgraded, event.TurretData{
		TurretID:  turret.ID,
		Type:      turret.Type,
		Position:  turret.Position,
		Attribute: attr,
		Level:     level + 1,
	})
	return nil
}

// UpgradeOption describes the next purchasable tier of one attribute.
type UpgradeOption struct {
	Attribute  defs.Attribute
	Level      int
	MaxLevel   int
	NextCost   int
	NextValue  float64
	Maxed      bool
	Affordable bool
}

// UpgradeOptions lists every attribute of turret id with the cost of its next tier.
func (s *Simulation) UpgradeOptions(id uuid.UUID) ([]UpgradeOption, error) {
	turret, def, err := s.lookupTurret(id)
	if err != nil {
		return nil, err
	}

	opts := make([]UpgradeOption, 0, len(defs.Attributes))
	for _, attr := range defs.Attributes {
		level := turret.Levels.Get(attr)
		opt := UpgradeOption{Attribute: attr, Level: level, MaxLevel: config.MaxUpgradeTier}
		if tier, ok := def.Tier(attr, level); ok && level < config.MaxUpgradeTier {
			opt.NextCost = tier.Cost
			opt.NextValue = tier.Value
			opt.Affordable = s.Registry.State.Cash >= tier.Cost
		} else {
			opt.Maxed = true
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// TurretAt returns the turret whose body covers (x, y), if any.
func (s *Simulation) TurretAt(x, y float64) (*component.Turret, bool) {
	p := geom.V(x, y)
	for _, t := range s.Registry.Turrets {
		if t.Position.DistanceTo(p) <= config.TurretRadius {
			return t, true
		}
	}
	return nil, false
}

func (s *Simulation) lookupTurret(id uuid.UUID) (*component.Turret, defs.TurretDefinition, error) {
	if !s.Registry.State.Started {
		return nil, defs.TurretDefinition{}, ErrNotStarted
	}
	turret, ok := s.Registry.Turret(id)
	if !ok {
		return nil, defs.TurretDefinition{}, fmt.Errorf("%w: %s", ErrUnknownTurret, id)
	}
	def, ok := s.Catalog.Turret(turret.Type)
	if !ok {
		return nil, defs.TurretDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTurretType, turret.Type)
	}
	return turret, def, nil
}
