package levels

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.csv
var LevelsFS embed.FS

// Store loads and saves level grids by id.
type Store interface {
	Load(level int) (Grid, error)
	Save(level int, g Grid) error
}

// Shape is the expected grid size. Zero fields are not checked.
type Shape struct {
	Rows int
	Cols int
}

// FSStore reads levels from any fs.FS. It cannot save.
type FSStore struct {
	FS    fs.FS
	Shape Shape
}

func NewEmbeddedStore(shape Shape) *FSStore {
	return &FSStore{FS: LevelsFS, Shape: shape}
}

func (s *FSStore) Load(level int) (Grid, error) {
	data, err := fs.ReadFile(s.FS, FileName(level))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, FileName(level))
		}
		return nil, fmt.Errorf("levels: read %s: %w", FileName(level), err)
	}
	return decodeChecked(data, level, s.Shape)
}

func (s *FSStore) Save(level int, _ Grid) error {
	return fmt.Errorf("levels: save %s: read-only store", FileName(level))
}

// DirStore keeps levels as files in a directory.
type DirStore struct {
	Dir   string
	Shape Shape
}

func NewDirStore(dir string, shape Shape) *DirStore {
	return &DirStore{Dir: dir, Shape: shape}
}

func (s *DirStore) path(level int) string {
	return filepath.Join(s.Dir, FileName(level))
}

func (s *DirStore) Load(level int) (Grid, error) {
	data, err := os.ReadFile(s.path(level))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path(level))
		}
		return nil, fmt.Errorf("levels: read %s: %w", s.path(level), err)
	}
	return decodeChecked(data, level, s.Shape)
}

func (s *DirStore) Save(level int, g Grid) error {
	if err := g.Validate(level, s.Shape.Rows, s.Shape.Cols); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("levels: save %s: %w", s.path(level), err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(s.path(level), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("levels: save %s: %w", s.path(level), err)
	}
	return nil
}

// FallbackStore loads from Primary and falls back to Secondary when the
// level is not found there. Saves go to Primary.
type FallbackStore struct {
	Primary   Store
	Secondary Store
}

func (s *FallbackStore) Load(level int) (Grid, error) {
	g, err := s.Primary.Load(level)
	if err == nil || !errors.Is(err, ErrNotFound) || s.Secondary == nil {
		return g, err
	}
	return s.Secondary.Load(level)
}

func (s *FallbackStore) Save(level int, g Grid) error {
	return s.Primary.Save(level, g)
}

func decodeChecked(data []byte, level int, shape Shape) (Grid, error) {
	g, err := Decode(bytes.NewReader(data), level)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(level, shape.Rows, shape.Cols); err != nil {
		return nil, err
	}
	return g, nil
}
