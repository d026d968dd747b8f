// Package positions handles local storage of taught arm positions and the
// history of sequence runs, under .armpress/ in the project directory.
package positions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Pose maps servo ids to angles in degrees.
type Pose map[int]float64

// Clone returns an independent copy of the pose.
func (p Pose) Clone() Pose {
	out := make(Pose, len(p))
	for id, angle := range p {
		out[id] = angle
	}
	return out
}

// Store handles local position and history storage operations.
type Store struct {
	basePath string
}

// NewStore creates a new Store with the given base path. Positions are stored
// in <basePath>/.armpress/positions.json.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// dir returns the path to the .armpress directory.
func (s *Store) dir() string {
	return filepath.Join(s.basePath, ".armpress")
}

func (s *Store) positionsPath() string {
	return filepath.Join(s.dir(), "positions.json")
}

// Load reads all taught positions. A missing file yields an empty map.
func (s *Store) Load() (map[string]Pose, error) {
	data, err := os.ReadFile(s.positionsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Pose{}, nil
		}
		return nil, fmt.Errorf("failed to read positions file: %w", err)
	}

	var poses map[string]Pose
	if err := json.Unmarshal(data, &poses); err != nil {
		return nil, fmt.Errorf("failed to parse positions file: %w", err)
	}
	if poses == nil {
		poses = map[string]Pose{}
	}
	return poses, nil
}

// Get returns the named position.
func (s *Store) Get(name string) (Pose, error) {
	poses, err := s.Load()
	if err != nil {
		return nil, err
	}
	pose, ok := poses[name]
	if !ok {
		return nil, fmt.Errorf("position not found: %s", name)
	}
	return pose, nil
}

// Save stores a position under the given name, overwriting any existing one.
func (s *Store) Save(name string, pose Pose) error {
	poses, err := s.Load()
	if err != nil {
		return err
	}
	poses[name] = pose.Clone()
	return s.write(s.positionsPath(), poses)
}

// Names returns the sorted names of all taught positions.
func (s *Store) Names() ([]string, error) {
	poses, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(poses))
	for name := range poses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// write marshals v to JSON and writes it under the .armpress directory,
// creating the directory if needed.
func (s *Store) write(path string, v any) error {
	if err := os.MkdirAll(s.dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
