package levels

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestGridRoundTrip(t *testing.T) {
	g := NewGrid(4, 6)
	g[3] = []int{0, 1, 2, 3, 4, 5}
	g[2][1] = PlayerSpawn
	g[2][4] = Exit
	g[1][2] = HostileSpawn

	store := NewDirStore(t.TempDir(), Shape{Rows: 4, Cols: 6})
	if err := store.Save(1, g); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(g) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", got, g)
	}
	if got.Rows() != 4 || got.Cols() != 6 {
		t.Fatalf("unexpected dimensions %dx%d", got.Rows(), got.Cols())
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		shape  Shape
		reason string
	}{
		{"non_integer", "-1,0\n0,x\n", Shape{}, "non-integer cell"},
		{"ragged", "-1,0,0\n0,0\n", Shape{}, "wrong column count"},
		{"wrong_rows", "-1,0\n0,0\n", Shape{Rows: 3}, "wrong row count"},
		{"wrong_cols", "-1,0\n0,0\n", Shape{Cols: 3}, "wrong column count"},
		{"unknown_code", "-1,0\n0,27\n", Shape{}, "unknown tile code"},
		{"empty", "", Shape{}, "empty grid"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := &FSStore{FS: fstest.MapFS{FileName(3): {Data: []byte(c.data)}}, Shape: c.shape}
			_, err := store.Load(3)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("expected ErrInvalidLevel, got %v", err)
			}
			var le *LoadError
			if !errors.As(err, &le) || le.Reason != c.reason || le.Level != 3 {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestFallbackStore(t *testing.T) {
	dir := NewDirStore(t.TempDir(), Shape{})
	embedded := &FSStore{FS: fstest.MapFS{FileName(1): {Data: []byte("0,0\n")}}}
	s := &FallbackStore{Primary: dir, Secondary: embedded}

	g, err := s.Load(1)
	if err != nil || !g.Equal(Grid{{0, 0}}) {
		t.Fatalf("expected embedded grid, got %v err=%v", g, err)
	}

	if err := s.Save(1, Grid{{1, 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	g, err = s.Load(1)
	if err != nil || !g.Equal(Grid{{1, 1}}) {
		t.Fatalf("expected disk grid to win, got %v err=%v", g, err)
	}

	if _, err := s.Load(9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEmbeddedLevelsDecode(t *testing.T) {
	store := NewEmbeddedStore(Shape{Rows: 16, Cols: 150})
	for _, id := range []int{1, 2} {
		g, err := store.Load(id)
		if err != nil {
			t.Fatalf("level %d: %v", id, err)
		}
		var buf bytes.Buffer
		if err := Encode(&buf, g); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if n := strings.Count(buf.String(), "\n"); n != 16 {
			t.Fatalf("expected 16 lines, got %d", n)
		}
	}
}
