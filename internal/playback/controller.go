// Package playback owns the playback session: which song is playing, from
// which ordered list, and at what position.
package playback

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/nowplaying"
	"github.com/llehouerou/imusic/internal/player"
	"github.com/llehouerou/imusic/internal/state"
)

const (
	DefaultSkipStep         = 10 * time.Second
	DefaultPositionInterval = time.Second
	DefaultAppID            = "imusic"
	DefaultDisplayName      = "iMusic"
)

// Options tunes a Controller. Zero values select the defaults.
type Options struct {
	SkipStep         time.Duration // SkipForward/SkipBack offset
	PositionInterval time.Duration // now-playing position push cadence
	AppID            string
	DisplayName      string
}

func (o Options) withDefaults() Options {
	if o.SkipStep <= 0 {
		o.SkipStep = DefaultSkipStep
	}
	if o.PositionInterval <= 0 {
		o.PositionInterval = DefaultPositionInterval
	}
	if o.AppID == "" {
		o.AppID = DefaultAppID
	}
	if o.DisplayName == "" {
		o.DisplayName = DefaultDisplayName
	}
	return o
}

// Controller is the single writer of the playback Session. Intents and
// engine events mutate the session under one lock, and engine commands are
// issued under that same lock so they keep intent order.
type Controller struct {
	mu sync.Mutex

	engine  player.Interface
	catalog catalog.Accessor
	prefs   state.Store
	sink    *nowplaying.Guard
	opts    Options

	session Session
	library []catalog.Song
	queue   []catalog.Song // nil: the library is the active queue
	loaded  string         // path last handed to engine.Load

	// now-playing metadata worker
	pushMu  sync.Mutex
	pending *metaPush
	wake    chan struct{}

	// position ticker, running only while playing
	posStop chan struct{}

	subs   []*Subscription
	subsMu sync.Mutex

	startOnce sync.Once
	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// New creates a controller seeded from the persisted preferences.
// The engine receives the seeded volume and loop flag immediately.
func New(
	engine player.Interface,
	cat catalog.Accessor,
	prefs state.Store,
	sink nowplaying.Sink,
	opts Options,
) *Controller {
	opts = opts.withDefaults()
	if sink == nil {
		sink = nowplaying.Nop{}
	}

	seed := state.LoadPreferences(prefs)
	c := &Controller{
		engine:  engine,
		catalog: cat,
		prefs:   prefs,
		sink:    nowplaying.NewGuard(sink, opts.AppID, opts.DisplayName),
		opts:    opts,
		session: Session{
			CurrentSong: decodeSong(seed.CurrentSong),
			Volume:      seed.Volume,
			IsLooping:   seed.IsLooping,
		},
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	engine.SetVolume(c.session.Volume)
	engine.SetLoop(c.session.IsLooping)

	c.wg.Add(1)
	go c.pushLoop()
	return c
}

// Start initializes the now-playing sink and begins consuming engine
// events until ctx is canceled or Close is called.
func (c *Controller) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.mu.Lock()
		c.schedulePushLocked()
		c.mu.Unlock()

		c.wg.Add(1)
		go c.eventLoop(ctx)
	})
}

// Close stops the position ticker and the event loop, then clears the
// now-playing sink. The engine is left to its owner.
func (c *Controller) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.stopPositionTickerLocked()
		close(c.done)
		c.mu.Unlock()

		c.wg.Wait()

		if err := c.sink.ClearNowPlaying(); err != nil {
			log.Debug().Err(err).Msg("clear now playing")
		}

		c.subsMu.Lock()
		for _, sub := range c.subs {
			sub.close()
		}
		c.subs = nil
		c.subsMu.Unlock()
	})
	return nil
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Session returns a snapshot of the current state.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.clone()
}

// Catalog returns the last loaded library.
func (c *Controller) Catalog() []catalog.Song {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.library)
}

// ActiveQueue returns the list next/previous navigate.
func (c *Controller) ActiveQueue() []catalog.Song {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.activeQueueLocked())
}

// Volume returns the current volume level.
func (c *Controller) Volume() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Volume
}

func (c *Controller) activeQueueLocked() []catalog.Song {
	if c.queue != nil {
		return c.queue
	}
	return c.library
}

func (c *Controller) publishSessionLocked() {
	snap := SessionChange{Session: c.session.clone()}
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendSession(snap)
	}
}

func (c *Controller) publishTrack(e TrackChange) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendTrack(e)
	}
}

func (c *Controller) publishError(e ErrorEvent) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}

// changedLocked runs after every mutation: it publishes the snapshot,
// schedules a metadata push when a described field changed, and starts or
// stops the position ticker.
func (c *Controller) changedLocked(prev Session) {
	if describedChanged(prev, c.session) {
		c.schedulePushLocked()
	}
	c.updatePositionTickerLocked()
	c.publishSessionLocked()
}

// describedChanged reports whether a field of the metadata push changed.
func describedChanged(a, b Session) bool {
	return !sameSong(a.CurrentSong, b.CurrentSong) ||
		a.IsPlaying != b.IsPlaying ||
		a.Duration != b.Duration ||
		a.IsLooping != b.IsLooping
}

func sameSong(a, b *catalog.Song) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Path == b.Path && a.Title == b.Title && a.Artist == b.Artist
}
