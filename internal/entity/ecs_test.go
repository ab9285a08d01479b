package entity

import (
	"testing"

	"go-path-defense/internal/component"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SpawnDespawnKeepsOrder(t *testing.T) {
	r := NewRegistry()
	a, ea := r.Spawn()
	b, _ := r.Spawn()
	c, _ := r.Spawn()
	ea.Type = "fast"

	require.True(t, r.Despawn(b))
	assert.Equal(t, []Handle{a, c}, r.Live)
	assert.Equal(t, 2, r.Pool.InUse())

	assert.False(t, r.Despawn(b), "already despawned")

	e, ok := r.Enemy(a)
	require.True(t, ok)
	assert.Equal(t, "fast", e.Type)
}

func TestRegistry_LiveHandlesIsCopy(t *testing.T) {
	r := NewRegistry()
	h, _ := r.Spawn()
	snapshot := r.LiveHandles()
	r.Despawn(h)
	assert.Len(t, snapshot, 1)
	assert.Equal(t, 0, r.LiveCount())
}

func TestRegistry_Turrets(t *testing.T) {
	r := NewRegistry()
	tr := &component.Turret{ID: uuid.New(), Type: "basic"}
	r.AddTurret(tr)

	got, ok := r.Turret(tr.ID)
	require.True(t, ok)
	assert.Same(t, tr, got)

	_, ok = r.Turret(uuid.New())
	assert.False(t, ok)
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.Spawn()
	r.Spawn()
	r.AddTurret(&component.Turret{ID: uuid.New()})
	r.GameTime = 12
	r.State.Cash = 70

	r.Reset()
	assert.Equal(t, 0, r.LiveCount())
	assert.Equal(t, 0, r.Pool.InUse())
	assert.Empty(t, r.Turrets)
	assert.Zero(t, r.GameTime)
	assert.Zero(t, r.State.Cash)
}
