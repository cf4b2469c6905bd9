package player

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTick is the TimeUpdate cadence while playing.
	DefaultTick = 250 * time.Millisecond

	speakerSampleRate = beep.SampleRate(44100)
	eventBuffer       = 64
)

// ErrNothingLoaded is returned by Play before any track was loaded.
var ErrNothingLoaded = errors.New("no track loaded")

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerOK   atomic.Bool
)

// initSpeaker opens the audio device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		speakerOK.Store(speakerErr == nil)
	})
	return errors.Wrap(speakerErr, "init speaker")
}

// Player plays one track at a time through the system speaker.
type Player struct {
	mu       sync.Mutex
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	loop     *loopStreamer
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	playing  bool
	finished bool

	volumeLevel int
	looping     bool

	gen     atomic.Uint64
	endedCh chan uint64
	events  chan Event
	tick    time.Duration

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a player emitting TimeUpdate every tick while playing.
// A non-positive tick selects DefaultTick.
func New(tick time.Duration) *Player {
	if tick <= 0 {
		tick = DefaultTick
	}
	p := &Player{
		volumeLevel: 100,
		endedCh:     make(chan uint64, 1),
		events:      make(chan Event, eventBuffer),
		tick:        tick,
		done:        make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Events returns the engine notification stream.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Load decodes path and prepares it for playback without starting it.
// On failure the previous track is unloaded.
func (p *Player) Load(path string) error {
	streamer, format, f, err := decodeFile(path)
	if err == nil {
		if err = initSpeaker(); err != nil {
			streamer.Close()
			f.Close()
		}
	}
	if err != nil {
		p.mu.Lock()
		p.unloadLocked()
		p.mu.Unlock()
		return err
	}

	duration := p.install(path, streamer, format, f)
	p.emit(Event{Kind: MetadataLoaded, Path: path, Duration: duration})
	return nil
}

// install replaces the current track with a decoded one, paused at its start.
func (p *Player) install(path string, streamer beep.StreamSeekCloser, format beep.Format, f *os.File) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.unloadLocked()

	p.path = path
	p.file = f
	p.streamer = streamer
	p.format = format
	p.loop = &loopStreamer{s: streamer, loop: p.looping}

	var out beep.Streamer = p.loop
	if format.SampleRate != speakerSampleRate {
		out = beep.Resample(4, format.SampleRate, speakerSampleRate, out)
	}
	p.ctrl = &beep.Ctrl{Streamer: out, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel == 0,
	}
	p.playing = false
	p.attachLocked()
	return format.SampleRate.D(streamer.Len())
}

// attachLocked hands the current chain to the speaker with a fresh generation,
// so end signals from a previous chain are ignored.
func (p *Player) attachLocked() {
	gen := p.gen.Add(1)
	p.finished = false
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		select {
		case p.endedCh <- gen:
		default:
		}
	})))
}

// unloadLocked stops output and releases the current file.
func (p *Player) unloadLocked() {
	if p.streamer == nil {
		return
	}
	if speakerOK.Load() {
		speaker.Clear()
	}
	p.gen.Add(1)
	p.streamer.Close()
	p.file.Close()

	p.path = ""
	p.file = nil
	p.streamer = nil
	p.loop = nil
	p.ctrl = nil
	p.volume = nil
	p.playing = false
	p.finished = false
}

// Play starts or resumes playback. Calling it while playing is a no-op.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return ErrNothingLoaded
	}
	if p.playing {
		return nil
	}
	if p.finished {
		speaker.Lock()
		err := p.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			return errors.Wrap(err, "rewind")
		}
		p.attachLocked()
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.playing = true
	return nil
}

// Pause pauses playback. Calling it while paused is a no-op.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
}

func (p *Player) pauseLocked() {
	if p.ctrl == nil || !p.playing {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.playing = false
}

// SeekTo moves to an absolute position, clamped to the track bounds.
func (p *Player) SeekTo(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}
	p.seekLocked(p.format.SampleRate.N(pos))
}

// Seek moves the position by delta, clamped to the track bounds.
func (p *Player) Seek(delta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}
	speaker.Lock()
	current := p.streamer.Position()
	speaker.Unlock()
	p.seekLocked(current + p.format.SampleRate.N(delta))
}

func (p *Player) seekLocked(target int) {
	length := p.streamer.Len()
	target = clampSample(target, length)

	speaker.Lock()
	err := p.streamer.Seek(target)
	speaker.Unlock()
	if err != nil {
		log.Warn().Err(err).Int("sample", target).Msg("seek failed")
		return
	}

	if p.finished && target < length {
		speaker.Lock()
		p.ctrl.Paused = !p.playing
		speaker.Unlock()
		p.attachLocked()
	}
	p.emit(Event{Kind: TimeUpdate, Path: p.path, Position: p.format.SampleRate.D(target)})
}

func clampSample(n, length int) int {
	return min(max(n, 0), max(length, 0))
}

// SetLoop sets whether the track restarts at its end instead of ending.
func (p *Player) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.looping = loop
	if p.loop != nil {
		p.loop.SetLoop(loop)
	}
}

// Close stops playback and the event goroutine. The event channel stays open.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()

		p.mu.Lock()
		p.unloadLocked()
		p.mu.Unlock()
	})
	return nil
}

func (p *Player) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case gen := <-p.endedCh:
			p.handleEnded(gen)
		case <-ticker.C:
			p.handleTick()
		}
	}
}

func (p *Player) handleEnded(gen uint64) {
	p.mu.Lock()
	if gen != p.gen.Load() || p.streamer == nil {
		p.mu.Unlock()
		return
	}
	p.finished = true
	p.playing = false
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	duration := p.format.SampleRate.D(p.streamer.Len())
	path := p.path
	p.mu.Unlock()

	p.emit(Event{Kind: TimeUpdate, Path: path, Position: duration})
	p.emit(Event{Kind: Ended, Path: path})
}

func (p *Player) handleTick() {
	p.mu.Lock()
	if !p.playing || p.streamer == nil {
		p.mu.Unlock()
		return
	}

	speaker.Lock()
	streamErr := p.streamer.Err()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	path := p.path

	if streamErr != nil {
		p.pauseLocked()
		p.mu.Unlock()
		log.Error().Err(streamErr).Str("path", path).Msg("stream failed, pausing")
		p.emit(Event{Kind: ExternalPause, Path: path, Err: streamErr})
		return
	}
	p.mu.Unlock()

	p.emit(Event{Kind: TimeUpdate, Path: path, Position: pos})
}

// emit never blocks. Position updates are the only events expected to be
// dropped under load since the next tick supersedes them.
func (p *Player) emit(ev Event) {
	select {
	case p.events <- ev:
	default:
		log.Debug().Stringer("kind", ev.Kind).Msg("player event dropped")
	}
}
