package app

import "errors"

// Command errors. A command that returns one of these changed nothing.
var (
	ErrNotStarted         = errors.New("game not started")
	ErrUnknownMap         = errors.New("unknown map")
	ErrUnknownTurretType  = errors.New("unknown turret type")
	ErrUnknownTurret      = errors.New("unknown turret")
	ErrUnknownAttribute   = errors.New("unknown upgrade attribute")
	ErrInsufficientCash   = errors.New("insufficient cash")
	ErrSelectionPending   = errors.New("a turret is already waiting to be placed")
	ErrNoPendingSelection = errors.New("no turret selected for placement")
	ErrInvalidPlacement   = errors.New("invalid placement")
	ErrMaxTier            = errors.New("attribute already at max tier")
)
