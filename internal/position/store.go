// Package position remembers where a display sat for each orientation.
package position

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/frudas24/flipmon/internal/display"
)

// ErrMalformed indicates a stored record is not two whitespace-separated integers.
var ErrMalformed = errors.New("malformed position record")

// Store keeps one file per orientation under Dir.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir. An empty dir means the working directory.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the record file for an orientation.
func (s *Store) Path(o display.Orientation) string {
	return filepath.Join(s.Dir, fmt.Sprintf("orientation%d.txt", uint32(o)))
}

// Save overwrites the record for o, creating the directory as needed.
func (s *Store) Save(o display.Orientation, p display.Point) error {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path(o), []byte(Format(p)), 0o644)
}

// Load reads the record for o. Missing records return false and no error.
func (s *Store) Load(o display.Orientation) (display.Point, bool, error) {
	path := s.Path(o)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return display.Point{}, false, nil
		}
		return display.Point{}, false, err
	}
	p, err := Parse(string(data))
	if err != nil {
		return display.Point{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return p, true, nil
}

// Format encodes a point as "x y".
func Format(p display.Point) string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Parse decodes "x y" into a point.
func Parse(raw string) (display.Point, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return display.Point{}, fmt.Errorf("%w: want 2 values, got %d", ErrMalformed, len(fields))
	}
	x, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return display.Point{}, fmt.Errorf("%w: x: %v", ErrMalformed, err)
	}
	y, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return display.Point{}, fmt.Errorf("%w: y: %v", ErrMalformed, err)
	}
	return display.Point{X: int32(x), Y: int32(y)}, nil
}
