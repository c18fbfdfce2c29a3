package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable parts of the global configuration as they
// appear in a YAML override file. Sections that are absent keep their defaults.
type fileConfig struct {
	Player   *PlayerConfig        `yaml:"player"`
	Enemies  map[string]yaml.Node `yaml:"enemies"`
	Item     *ItemConfig          `yaml:"item"`
	Particle *ParticleConfig      `yaml:"particle"`
	Camera   *CameraConfig        `yaml:"camera"`
	Terrain  *TerrainConfig       `yaml:"terrain"`
	Session  *SessionConfig       `yaml:"session"`
}

// Load applies a YAML override file on top of the defaults. An empty path is a no-op.
func Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Apply decodes a YAML document and merges it into the global configuration.
// Each section is decoded on top of a copy of its current value, so a file only
// needs to name the fields it changes.
func Apply(data []byte) error {
	fc := fileConfig{
		Player:   &PlayerConfig{},
		Item:     &ItemConfig{},
		Particle: &ParticleConfig{},
		Camera:   &CameraConfig{},
		Terrain:  &TerrainConfig{},
		Session:  &SessionConfig{},
	}
	*fc.Player = Player
	*fc.Item = Item
	*fc.Particle = Particle
	*fc.Camera = Camera
	*fc.Terrain = Terrain
	*fc.Session = Session

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	types := make(map[EnemyKind]EnemyTypeConfig, len(Enemy.Types))
	for kind, t := range Enemy.Types {
		types[kind] = t
	}
	for name, node := range fc.Enemies {
		kind, ok := ParseEnemyKind(name)
		if !ok {
			return fmt.Errorf("unknown enemy type %q", name)
		}
		t := types[kind]
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}
		types[kind] = t
	}

	Player = *fc.Player
	Item = *fc.Item
	Particle = *fc.Particle
	Camera = *fc.Camera
	Terrain = *fc.Terrain
	Session = *fc.Session
	Enemy.Types = types
	return nil
}
