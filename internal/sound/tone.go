// Package sound produces the short notification tone played after a
// successful generation. The tone is cosmetic; every failure here is logged
// and swallowed by the caller.
package sound

import (
	"math"
	"time"
)

const (
	// SampleRate is the PCM sample rate used for synthesis and playback.
	SampleRate = 44100

	// NotifyFrequency is the notification tone pitch in Hz.
	NotifyFrequency = 800.0

	// NotifyDuration is the total tone length.
	NotifyDuration = 100 * time.Millisecond

	// NotifyFade is the linear fade-in/fade-out ramp at each end.
	NotifyFade = 10 * time.Millisecond
)

// Tone synthesizes a mono signed-16-bit little-endian sine wave of the given
// frequency and duration, with a linear fade ramp at both ends to avoid
// clicks. fade is clamped to half the duration.
func Tone(freq float64, duration, fade time.Duration, sampleRate int) []byte {
	n := int(float64(sampleRate) * duration.Seconds())
	fadeSamples := int(float64(sampleRate) * fade.Seconds())
	if fadeSamples > n/2 {
		fadeSamples = n / 2
	}

	buf := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))

		gain := 1.0
		if fadeSamples > 0 {
			if i < fadeSamples {
				gain = float64(i) / float64(fadeSamples)
			} else if i >= n-fadeSamples {
				gain = float64(n-1-i) / float64(fadeSamples)
			}
		}

		sample := int16(v * gain * math.MaxInt16 * 0.6)
		buf[2*i] = byte(sample)
		buf[2*i+1] = byte(sample >> 8)
	}
	return buf
}

// NotifyTone returns the standard generation chime.
func NotifyTone() []byte {
	return Tone(NotifyFrequency, NotifyDuration, NotifyFade, SampleRate)
}
