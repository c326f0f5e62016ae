package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	// All operations should be safe to call without initialization
	// These should not panic
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlaySplash()
	sm.PlayExplosion()
	sm.PlaySink()
	sm.PlayJingle()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Note: Speaker initialization may fail in CI/test environments without audio devices
	// This is expected behavior - the game should work without audio
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		// Not a test failure - audio is optional
		return
	}

	// If initialization succeeded, cleanup should work
	sm.Cleanup()
}

// TestSoundManagerDoubleInitialization verifies double initialization is safe
func TestSoundManagerDoubleInitialization(t *testing.T) {
	sm := NewSoundManager()

	err1 := sm.Initialize()
	if err1 != nil {
		t.Logf("First initialization failed (expected in test environment): %v", err1)
		return
	}

	// Second initialization should be a no-op
	err2 := sm.Initialize()
	if err2 != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err2)
	}

	sm.Cleanup()
}

// TestSoundManagerOperationsAfterCleanup verifies operations after cleanup are safe
func TestSoundManagerOperationsAfterCleanup(t *testing.T) {
	sm := NewSoundManager()

	err := sm.Initialize()
	if err != nil {
		t.Logf("Initialization failed (expected in test environment): %v", err)
		// Continue test - operations after cleanup should still be safe
	}

	sm.Cleanup()

	// All operations should be safe after cleanup
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked after cleanup: %v", r)
		}
	}()

	sm.PlaySplash()
	sm.PlayExplosion()
	sm.PlaySink()
	sm.PlayJingle()
}

// TestAudioConstants verifies audio constants are reasonable
func TestAudioConstants(t *testing.T) {
	if sampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", sampleRate)
	}

	if speakerBufferDurationMs <= 0 {
		t.Error("Speaker buffer duration must be positive")
	}

	durations := []struct {
		name  string
		value int
	}{
		{"splashDurationMs", splashDurationMs},
		{"explosionDurationMs", explosionDurationMs},
		{"sinkDurationMs", sinkDurationMs},
		{"jingleNoteDurationMs", jingleNoteDurationMs},
	}

	for _, d := range durations {
		if d.value <= 0 {
			t.Errorf("%s must be positive, got %d", d.name, d.value)
		}
	}
}

// TestAudioAmplitudes verifies audio amplitudes are in reasonable range
func TestAudioAmplitudes(t *testing.T) {
	amplitudes := []struct {
		name  string
		value float64
	}{
		{"splashNoiseAmplitude", splashNoiseAmplitude},
		{"splashPlopAmplitude", splashPlopAmplitude},
		{"explosionBoomAmplitude", explosionBoomAmplitude},
		{"explosionNoiseAmplitude", explosionNoiseAmplitude},
		{"sinkRumbleAmplitude", sinkRumbleAmplitude},
		{"sinkNoiseAmplitude", sinkNoiseAmplitude},
		{"jingleAmplitude", jingleAmplitude},
	}

	for _, amp := range amplitudes {
		if amp.value < 0 || amp.value > 1.0 {
			t.Errorf("%s should be between 0 and 1.0, got %f", amp.name, amp.value)
		}
	}
}

// TestAudioFrequencies verifies audio frequencies are in audible range
func TestAudioFrequencies(t *testing.T) {
	frequencies := []struct {
		name  string
		value float64
	}{
		{"splashPlopFrequencyHz", splashPlopFrequencyHz},
		{"explosionBoomFrequencyHz", explosionBoomFrequencyHz},
		{"sinkFreqStartHz", sinkFreqStartHz},
		{"sinkFreqEndHz", sinkFreqEndHz},
	}

	for _, freq := range frequencies {
		// Human hearing range is roughly 20Hz to 20kHz
		// We expect low frequencies for game audio (20Hz to 500Hz)
		if freq.value < 20 || freq.value > 500 {
			t.Errorf("%s should be between 20 and 500 Hz for game audio, got %f", freq.name, freq.value)
		}
	}

	for i, note := range jingleNotesHz {
		if note < 20 || note > 500 {
			t.Errorf("jingleNotesHz[%d] should be between 20 and 500 Hz, got %f", i, note)
		}
		if i > 0 && note <= jingleNotesHz[i-1] {
			t.Errorf("Expected the jingle to ascend, note %d does not", i)
		}
	}
}

// TestGeneratorsFillRequestedSamples verifies every generator streams
// full buffers without error
func TestGeneratorsFillRequestedSamples(t *testing.T) {
	generators := []struct {
		name string
		gen  interface {
			Stream(samples [][2]float64) (int, bool)
			Err() error
		}
	}{
		{"splash", NewSplashGenerator(sampleRate)},
		{"explosion", NewExplosionGenerator(sampleRate)},
		{"sink", NewSinkGenerator(sampleRate)},
		{"jingle", NewJingleGenerator(sampleRate)},
	}

	buf := make([][2]float64, 512)
	for _, g := range generators {
		n, ok := g.gen.Stream(buf)
		if n != len(buf) || !ok {
			t.Errorf("%s: expected a full buffer, got n=%d ok=%v", g.name, n, ok)
		}
		if err := g.gen.Err(); err != nil {
			t.Errorf("%s: unexpected error: %v", g.name, err)
		}
		for i, s := range buf {
			if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
				t.Errorf("%s: sample %d out of [-1,1]: %v", g.name, i, s)
				break
			}
		}
	}
}
