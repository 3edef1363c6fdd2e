package main

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/platformer/sim"
)

const (
	sampleRate = 44100
	musicFile  = "audio/music.mp3"
)

//go:embed sounds/*.wav
var soundsFS embed.FS

var cueFiles = map[sim.Cue]string{
	sim.CueJump:      "sounds/jump.wav",
	sim.CueShoot:     "sounds/shoot.wav",
	sim.CueExplosive: "sounds/explosive.wav",
}

// audioCues plays each cue on a fresh player so overlapping shots do not
// cut each other off.
type audioCues struct {
	ctx    *audio.Context
	clips  map[sim.Cue][]byte
	volume float64
	log    *log.Logger
	music  *audio.Player
}

func newAudioCues(logger *log.Logger) (*audioCues, error) {
	a := &audioCues{
		ctx:    audio.NewContext(sampleRate),
		clips:  make(map[sim.Cue][]byte, len(cueFiles)),
		volume: 0.5,
		log:    logger,
	}
	for cue, file := range cueFiles {
		b, err := soundsFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("audio: read %s: %w", file, err)
		}
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("audio: decode %s: %w", file, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("audio: decode %s: %w", file, err)
		}
		a.clips[cue] = pcm
	}
	return a, nil
}

func (a *audioCues) Play(cue sim.Cue) {
	pcm, ok := a.clips[cue]
	if !ok {
		a.log.Debug("unknown cue", "cue", cue)
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(a.volume)
	p.Play()
}

// loopMusic starts the background track from the assets directory when one
// is present. A missing track is not an error.
func (a *audioCues) loopMusic(fsys fs.FS) error {
	if fsys == nil {
		return nil
	}
	b, err := fs.ReadFile(fsys, musicFile)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Debug("no background music", "file", musicFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("audio: read %s: %w", musicFile, err)
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("audio: decode %s: %w", musicFile, err)
	}
	p, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return fmt.Errorf("audio: %s: %w", musicFile, err)
	}
	p.SetVolume(a.volume * 0.6)
	p.Play()
	a.music = p
	return nil
}

func (a *audioCues) close() {
	if a.music != nil {
		_ = a.music.Close()
	}
}
