package defs

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"go-path-defense/internal/config"
	"go-path-defense/internal/logging"
	"go-path-defense/pkg/geom"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the read-only balance data: maps, turret types and enemy types keyed by id.
type Catalog struct {
	maps    map[string]MapPath
	turrets map[string]TurretDefinition
	enemies map[string]EnemyDefinition
}

type catalogFile struct {
	Maps    map[string][]geom.Vec2      `yaml:"maps"`
	Turrets map[string]TurretDefinition `yaml:"turrets"`
	Enemies map[string]EnemyDefinition  `yaml:"enemies"`
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// MustDefaultCatalog is DefaultCatalog for callers that cannot recover (main, tests).
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates catalog YAML (JSON input works too).
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	c := &Catalog{
		maps:    make(map[string]MapPath, len(raw.Maps)),
		turrets: make(map[string]TurretDefinition, len(raw.Turrets)),
		enemies: make(map[string]EnemyDefinition, len(raw.Enemies)),
	}
	for name, points := range raw.Maps {
		if err := c.AddMap(name, points); err != nil {
			return nil, err
		}
	}
	for id, def := range raw.Turrets {
		def.ID = id
		if err := def.validate(config.MaxUpgradeTier); err != nil {
			return nil, err
		}
		c.turrets[id] = def
	}
	for id, def := range raw.Enemies {
		def.ID = id
		if err := def.validate(); err != nil {
			return nil, err
		}
		c.enemies[id] = def
	}

	logging.Debugf("Loaded catalog: %d maps, %d turrets, %d enemies", len(c.maps), len(c.turrets), len(c.enemies))
	return c, nil
}

// AddMap registers (or replaces) a named path, e.g. one drawn in an external editor.
func (c *Catalog) AddMap(name string, points []geom.Vec2) error {
	path, err := NewMapPath(name, points)
	if err != nil {
		return err
	}
	c.maps[name] = path
	return nil
}

func (c *Catalog) Map(name string) (MapPath, bool) {
	p, ok := c.maps[name]
	return p, ok
}

func (c *Catalog) Turret(id string) (TurretDefinition, bool) {
	d, ok := c.turrets[id]
	return d, ok
}

func (c *Catalog) Enemy(id string) (EnemyDefinition, bool) {
	d, ok := c.enemies[id]
	return d, ok
}

// MapNames returns map names sorted for stable menus.
func (c *Catalog) MapNames() []string {
	return sortedKeys(c.maps)
}

func (c *Catalog) TurretIDs() []string {
	return sortedKeys(c.turrets)
}

func (c *Catalog) EnemyIDs() []string {
	return sortedKeys(c.enemies)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
