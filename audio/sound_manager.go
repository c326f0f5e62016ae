package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate              = beep.SampleRate(48000)
	speakerBufferDurationMs = 100
)

// Effect shaping. All one-shot cues: a splash for a shot into open
// water, an explosion for a hull hit, a long rumble for a sinking ship
// and a three-note jingle when the match ends.
const (
	splashDurationMs      = 300
	splashNoiseAmplitude  = 0.25
	splashPlopAmplitude   = 0.2
	splashPlopFrequencyHz = 150.0
	splashDecayRate       = 10.0
	splashPlopDecayRate   = 20.0

	explosionDurationMs      = 450
	explosionBoomAmplitude   = 0.4
	explosionNoiseAmplitude  = 0.2
	explosionBoomFrequencyHz = 55.0
	explosionDecayRate       = 6.0

	sinkDurationMs      = 900
	sinkRumbleAmplitude = 0.3
	sinkNoiseAmplitude  = 0.1
	sinkFreqStartHz     = 120.0
	sinkFreqEndHz       = 40.0
	sinkDecayRate       = 3.0

	jingleNoteDurationMs = 220
	jingleAmplitude      = 0.25
	jingleNoteDecayRate  = 4.0
)

// jingleNotesHz is an ascending E major triad.
var jingleNotesHz = [...]float64{329.63, 415.30, 493.88}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	sm.mixer.Clear()
	sm.initialized = false
}

// play queues a one-shot cue of the given length on the mixer.
func (sm *SoundManager) play(s beep.Streamer, ms int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*time.Duration(ms)), s))
}

// PlaySplash plays the water splash of a missed shot
func (sm *SoundManager) PlaySplash() {
	sm.play(NewSplashGenerator(sampleRate), splashDurationMs)
}

// PlayExplosion plays the hull explosion of a wounding hit
func (sm *SoundManager) PlayExplosion() {
	sm.play(NewExplosionGenerator(sampleRate), explosionDurationMs)
}

// PlaySink plays the descending rumble of a sinking ship
func (sm *SoundManager) PlaySink() {
	sm.play(NewSinkGenerator(sampleRate), sinkDurationMs)
}

// PlayJingle plays the end-of-match jingle
func (sm *SoundManager) PlayJingle() {
	sm.play(NewJingleGenerator(sampleRate), len(jingleNotesHz)*jingleNoteDurationMs)
}

// SplashGenerator generates a short low-passed noise burst with a plop
type SplashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	last float64
}

// NewSplashGenerator creates a splash sound generator
func NewSplashGenerator(sr beep.SampleRate) *SplashGenerator {
	return &SplashGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *SplashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * splashDecayRate)

		// Low-passed noise for the water spray
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.last += (noise - g.last) * 0.25

		// Short plop under the spray
		plop := splashPlopAmplitude * math.Exp(-t*splashPlopDecayRate) *
			math.Sin(2*math.Pi*splashPlopFrequencyHz*t)

		sample := envelope*splashNoiseAmplitude*g.last + plop

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SplashGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates a deep boom with a noise crackle
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewExplosionGenerator creates an explosion sound generator
func NewExplosionGenerator(sr beep.SampleRate) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * explosionDecayRate)

		// Boom with a pitch drop as the envelope closes
		boomFreq := explosionBoomFrequencyHz * (1 + 2*envelope)
		boom := explosionBoomAmplitude * math.Sin(2*math.Pi*boomFreq*t)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := envelope * (boom + explosionNoiseAmplitude*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// SinkGenerator generates a long rumble sweeping down in pitch
type SinkGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	seed    int64
}

// NewSinkGenerator creates a sinking sound generator
func NewSinkGenerator(sr beep.SampleRate) *SinkGenerator {
	return &SinkGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * sinkDurationMs),
		seed:    time.Now().UnixNano(),
	}
}

func (g *SinkGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}
		envelope := math.Exp(-t * sinkDecayRate)

		// Rumble sliding from the start pitch down to the end pitch
		freq := sinkFreqStartHz + (sinkFreqEndHz-sinkFreqStartHz)*progress
		rumble := sinkRumbleAmplitude * math.Sin(2*math.Pi*freq*t)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := envelope * (rumble + sinkNoiseAmplitude*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SinkGenerator) Err() error {
	return nil
}

// JingleGenerator generates the ascending end-of-match notes
type JingleGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewJingleGenerator creates a jingle generator
func NewJingleGenerator(sr beep.SampleRate) *JingleGenerator {
	return &JingleGenerator{sr: sr}
}

func (g *JingleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteSamples := g.sr.N(time.Millisecond * jingleNoteDurationMs)
	for i := range samples {
		idx := g.pos / noteSamples
		sample := 0.0
		if idx < len(jingleNotesHz) {
			t := float64(g.pos%noteSamples) / float64(g.sr)

			// Quick attack, ringing decay per note
			envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*jingleNoteDecayRate)
			sample = jingleAmplitude * envelope * math.Sin(2*math.Pi*jingleNotesHz[idx]*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *JingleGenerator) Err() error {
	return nil
}
