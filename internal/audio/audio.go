package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/brickbreak/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// gap is a short silence between notes of a jingle
func gap(duration time.Duration) beep.Streamer {
	return beep.Silence(sampleRate.N(duration))
}

// soundFor returns the effect for an event, nil when the event is silent
func soundFor(ev game.Event) beep.Streamer {
	switch ev.Type {
	case game.EventPaddleHit:
		// High-pitched short beep
		return squareWave(880, 50*time.Millisecond)
	case game.EventWallBounce:
		return squareWave(440, 30*time.Millisecond)
	case game.EventBrickHit:
		return squareWave(660, 40*time.Millisecond)
	case game.EventBrickBroken:
		return beep.Seq(
			squareWave(990, 40*time.Millisecond),
			squareWave(1320, 60*time.Millisecond),
		)
	case game.EventBallSpawned:
		return beep.Seq(
			squareWave(660, 60*time.Millisecond),
			gap(20*time.Millisecond),
			squareWave(880, 60*time.Millisecond),
			gap(20*time.Millisecond),
			squareWave(1100, 90*time.Millisecond),
		)
	case game.EventBallLost:
		return squareWave(220, 150*time.Millisecond)
	case game.EventBoardCleared:
		return beep.Seq(
			squareWave(523, 100*time.Millisecond),
			squareWave(659, 100*time.Millisecond),
			squareWave(784, 100*time.Millisecond),
			squareWave(1047, 200*time.Millisecond),
		)
	case game.EventGameOver:
		// Descending tones
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
			squareWave(220, 250*time.Millisecond),
		)
	}
	return nil
}

// Play plays the sound for a game event
func Play(ev game.Event) {
	if !initialized {
		return
	}
	if s := soundFor(ev); s != nil {
		speaker.Play(s)
	}
}
