package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level (0 to 100). Values outside the range are clamped.
func (p *Player) SetVolume(level int) {
	level = min(max(level, 0), 100)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.volumeLevel = level
	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level == 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0 to 100).
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// levelToVolume converts a 0-100 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 means unchanged, -1 is half.
// We map: 100 -> 0, 50 -> -1, 25 -> -2, 0 -> -10 (and Silent).
func levelToVolume(level int) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 100 {
		return 0
	}
	return math.Log2(float64(level) / 100)
}
