// internal/system/utils.go
package system

import "go-path-defense/internal/component"

// ApplyDamage наносит урон врагу. Урон не может быть отрицательным,
// здоровье не опускается ниже нуля.
func ApplyDamage(e *component.Enemy, damage int) {
	if damage <= 0 {
		return
	}
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
}
