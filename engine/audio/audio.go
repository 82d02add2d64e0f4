package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/1siamBot/tripod-arena/engine/core"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager plays weapon cues through the speaker. Until Initialize
// succeeds every Play call is silently dropped.
type SoundManager struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	MasterVolume float64
	initialized  bool
}

func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{mixer: &beep.Mixer{}}
	sm.SetVolume(volume)
	return sm
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every playing sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume sets master volume (0-1)
func (sm *SoundManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	sm.MasterVolume = v
}

// PlayShot queues the firing cue for a weapon
func (sm *SoundManager) PlayShot(kind core.WeaponKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := ShotStreamer(kind, sm.MasterVolume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ShotProfile shapes the noise burst per weapon
type ShotProfile struct {
	duration time.Duration
	decay    float64 // envelope falloff per second
	rumble   float64 // Hz
	noise    float64
}

var shotProfiles = [...]ShotProfile{
	core.WeaponMachineGun: {duration: 80 * time.Millisecond, decay: 40, rumble: 160, noise: 0.5},
	core.WeaponCannon:     {duration: 350 * time.Millisecond, decay: 9, rumble: 55, noise: 0.3},
}

func profileFor(kind core.WeaponKind) ShotProfile {
	if int(kind) < len(shotProfiles) {
		return shotProfiles[kind]
	}
	return shotProfiles[core.WeaponMachineGun]
}

// ShotStreamer returns a finite, volume-scaled burst for kind
func ShotStreamer(kind core.WeaponKind, volume float64) beep.Streamer {
	p := profileFor(kind)
	burst := beep.Take(sampleRate.N(p.duration), NewShotGenerator(sampleRate, p))
	return newVolume(burst, volume)
}

// newVolume maps a linear 0-1 volume onto beep's log scale
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ShotGenerator produces exponentially decaying noise over a low rumble
type ShotGenerator struct {
	sr   beep.SampleRate
	p    ShotProfile
	pos  int
	seed int64
}

func NewShotGenerator(sr beep.SampleRate, p ShotProfile) *ShotGenerator {
	return &ShotGenerator{sr: sr, p: p, seed: 1}
}

func (g *ShotGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.p.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := math.Sin(2 * math.Pi * g.p.rumble * t)

		sample := envelope * (g.p.noise*noise + (1-g.p.noise)*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ShotGenerator) Err() error {
	return nil
}
