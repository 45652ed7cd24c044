package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	d := time.Millisecond * 100
	s := NewOscillator(440, d, WaveSine, testRate)
	want := testRate.N(d)
	if got := drain(s); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

func TestOscillatorAmplitudeBounds(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		s := NewOscillator(220, time.Millisecond*50, wave, testRate)
		buf := make([][2]float64, 256)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
					t.Fatalf("Wave %d sample out of range: %v", wave, buf[i][0])
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestEnvelopeRampsToSilence(t *testing.T) {
	d := time.Millisecond * 100
	s := NewEnvelope(NewOscillator(440, d, WaveSquare, testRate), d, time.Millisecond*10, time.Millisecond*30, testRate)

	samples := make([][2]float64, 0, testRate.N(d))
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok {
			break
		}
	}
	if len(samples) == 0 {
		t.Fatal("No samples produced")
	}

	// Attack starts quiet, release ends quiet
	if first := samples[0][0]; first < -0.05 || first > 0.05 {
		t.Errorf("Attack must start near silence, got %v", first)
	}
	if last := samples[len(samples)-1][0]; last < -0.05 || last > 0.05 {
		t.Errorf("Release must end near silence, got %v", last)
	}
}

func TestSweepStaysBounded(t *testing.T) {
	s := NewSweep(100, 1000, time.Millisecond*80, testRate)
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
				t.Fatalf("Sweep sample out of range: %v", buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
}

func TestMutedCuesStaySilent(t *testing.T) {
	c := NewCues(true)
	if err := c.Initialize(); err != nil {
		t.Fatalf("Muted initialize must not fail: %v", err)
	}
	// No speaker was opened; event handling must be a no-op, not a crash
	c.playHit()
	c.Cleanup()
}
