package app

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/config"
	"github.com/llehouerou/imusic/internal/mpris"
	"github.com/llehouerou/imusic/internal/notify"
	"github.com/llehouerou/imusic/internal/nowplaying"
	"github.com/llehouerou/imusic/internal/playback"
	"github.com/llehouerou/imusic/internal/player"
	"github.com/llehouerou/imusic/internal/state"
)

// Verify Controller implements the MPRIS command surface at compile time.
var _ mpris.Commands = (*playback.Controller)(nil)

// App owns every long-lived service of a running player.
type App struct {
	Config     *config.Config
	Store      *state.Manager
	Catalog    *catalog.Catalog
	Controller *playback.Controller

	engine    player.Interface
	closers   []io.Closer // sink-side resources, closed after the controller
	announcer *notify.TrackAnnouncer

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// OpenCatalog opens the database and the catalog on top of it, without any
// audio. The CLI uses it for library and playlist commands.
func OpenCatalog(cfg *config.Config) (*state.Manager, *catalog.Catalog, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, nil, errors.Wrap(err, "resolve database path")
	}
	store, err := state.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open database")
	}
	return store, catalog.New(store.DB(), store, cfg.DefaultMusicFolder()), nil
}

// New opens the database and builds the audio engine, the now-playing
// sink, and the controller.
func New(cfg *config.Config) (*App, error) {
	store, cat, err := OpenCatalog(cfg)
	if err != nil {
		return nil, err
	}

	var notifier notify.Notifier
	if cfg.NotificationsEnabled() {
		if notifier, err = notify.New(); err != nil {
			log.Warn().Err(err).Msg("desktop notifications unavailable")
			notifier = nil
		}
	}

	return build(cfg, store, cat, player.New(player.DefaultTick), notifier), nil
}

// build wires the services around an already opened store and engine.
func build(
	cfg *config.Config,
	store *state.Manager,
	cat *catalog.Catalog,
	engine player.Interface,
	notifier notify.Notifier,
) *App {
	a := &App{
		Config:  cfg,
		Store:   store,
		Catalog: cat,
		engine:  engine,
	}

	pc := cfg.GetPlayerConfig()
	if err := state.SeedInt(store, state.KeyVolume, pc.DefaultVolume); err != nil {
		log.Warn().Err(err).Msg("seed default volume")
	}

	var sink nowplaying.Sink = nowplaying.Nop{}
	bridge := &commandBridge{}
	if cfg.NowPlayingEnabled() {
		srv := mpris.New(bridge)
		sink = srv
		a.closers = append(a.closers, srv)
	}

	np := cfg.GetNowPlayingConfig()
	a.Controller = playback.New(engine, cat, store, sink, playback.Options{
		SkipStep:         pc.SkipStep(),
		PositionInterval: pc.PositionInterval(),
		AppID:            np.AppID,
		DisplayName:      np.DisplayName,
	})
	bridge.ctrl = a.Controller

	if notifier != nil {
		a.announcer = notify.NewTrackAnnouncer(notifier, cfg.NotificationTimeout())
	}
	return a
}

// Start begins event processing and loads the library. A library failure is
// returned but leaves the app usable.
func (a *App) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)
	a.Controller.Start(ctx)

	if a.announcer != nil {
		sub := a.Controller.Subscribe()
		a.wg.Go(func() { a.announceTracks(ctx, sub) })
	}

	return a.Controller.LoadCatalog()
}

func (a *App) announceTracks(ctx context.Context, sub *playback.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case <-sub.SessionChanged:
		case <-sub.Error:
		case tc := <-sub.TrackChanged:
			cover := ""
			if tc.Cover != nil {
				cover = *tc.Cover
			}
			err := a.announcer.Announce(tc.Current.Title, tc.Current.Artist, tc.Current.Path, cover)
			if err != nil {
				log.Debug().Err(err).Msg("track notification")
			}
		}
	}
}

// Close tears the services down in reverse order of construction.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	errs := a.Controller.Close()
	a.wg.Wait()

	if a.announcer != nil {
		if err := a.announcer.Dismiss(); err != nil {
			log.Debug().Err(err).Msg("dismiss notification")
		}
	}
	for _, c := range a.closers {
		errs = errors.CombineErrors(errs, c.Close())
	}
	errs = errors.CombineErrors(errs, a.engine.Close())
	errs = errors.CombineErrors(errs, a.Store.Close())
	return errs
}

// commandBridge hands MPRIS requests to the controller, which is built
// after the sink it feeds.
type commandBridge struct {
	ctrl *playback.Controller
}

func (b *commandBridge) TogglePlayPause()                 { b.ctrl.TogglePlayPause() }
func (b *commandBridge) Resume()                          { b.ctrl.Resume() }
func (b *commandBridge) Pause()                           { b.ctrl.Pause() }
func (b *commandBridge) Next()                            { b.ctrl.Next() }
func (b *commandBridge) Previous()                        { b.ctrl.Previous() }
func (b *commandBridge) Seek(pos time.Duration)           { b.ctrl.Seek(pos) }
func (b *commandBridge) SkipRelative(delta time.Duration) { b.ctrl.SkipRelative(delta) }
func (b *commandBridge) SetLoop(loop bool)                { b.ctrl.SetLoop(loop) }
func (b *commandBridge) SetVolume(level int) error        { return b.ctrl.SetVolume(level) }
func (b *commandBridge) Volume() int                      { return b.ctrl.Volume() }
