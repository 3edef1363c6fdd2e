package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestFSProviderDiscoversFrames(t *testing.T) {
	fsys := fstest.MapFS{
		"Images/Dale/Idle/0.png": {Data: pngBytes(t, 12, 20)},
		"Images/Dale/Idle/1.png": {Data: pngBytes(t, 12, 20)},
		"Images/Dale/Idle/2.png": {Data: pngBytes(t, 12, 20)},
		// 4 is unreachable because 3 is missing
		"Images/Dale/Idle/4.png": {Data: pngBytes(t, 12, 20)},
		"Images/Dale/Move/0.png": {Data: pngBytes(t, 14, 20)},
	}
	p := NewFSProvider(fsys, "Images")

	cases := []struct {
		name   string
		unit   string
		anim   string
		frames int
		w, h   int
	}{
		{"idle", "Dale", "Idle", 3, 12, 20},
		{"move", "Dale", "Move", 1, 14, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anim, err := p.Animation(c.unit, c.anim)
			if err != nil {
				t.Fatalf("Animation: %v", err)
			}
			if anim.Len() != c.frames {
				t.Fatalf("frames = %d, want %d", anim.Len(), c.frames)
			}
			if w, h := anim.Size(); w != c.w || h != c.h {
				t.Fatalf("size = %dx%d, want %dx%d", w, h, c.w, c.h)
			}
		})
	}

	_, err := p.Animation("Dale", "Death")
	var missing *AssetMissingError
	if !errors.As(err, &missing) || missing.Animation != "Death" {
		t.Fatalf("expected AssetMissingError, got %v", err)
	}
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("expected ErrAssetMissing")
	}
}

func TestFSProviderRejectsCorruptFrame(t *testing.T) {
	fsys := fstest.MapFS{"Images/Enemy/Idle/0.png": {Data: []byte("not a png")}}
	_, err := NewFSProvider(fsys, "Images").Animation("Enemy", "Idle")
	if err == nil || errors.Is(err, ErrAssetMissing) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestStaticProviderAndFallback(t *testing.T) {
	static := NewStaticProvider(StaticUnit{Type: "Enemy", Width: 15, Height: 20, Frames: map[string]int{"Idle": 5}})
	anim, err := static.Animation("Enemy", "Idle")
	if err != nil || anim.Len() != 5 {
		t.Fatalf("unexpected static animation %+v err=%v", anim, err)
	}
	if _, err := static.Animation("Enemy", "Move"); !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("expected missing Move, got %v", err)
	}

	disk := NewFSProvider(fstest.MapFS{}, "Images")
	anim, err = Fallback{Primary: disk, Secondary: static}.Animation("Enemy", "Idle")
	if err != nil || anim.Len() != 5 {
		t.Fatalf("fallback did not use static provider: %+v err=%v", anim, err)
	}
}
