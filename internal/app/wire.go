package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/audio"
	"github.com/abhisek/lessonbook/internal/coach"
	"github.com/abhisek/lessonbook/internal/config"
	"github.com/abhisek/lessonbook/internal/discovery"
	"github.com/abhisek/lessonbook/internal/llm"
	"github.com/abhisek/lessonbook/internal/screen"
	"github.com/abhisek/lessonbook/internal/screens/errorpanel"
	"github.com/abhisek/lessonbook/internal/screens/lesson"
	"github.com/abhisek/lessonbook/internal/screens/loading"
	"github.com/abhisek/lessonbook/internal/source"
	"github.com/abhisek/lessonbook/internal/store"
	"github.com/abhisek/lessonbook/internal/viewer"
)

// Services are the long-lived dependencies of a viewing session. Store
// and Provider are optional.
type Services struct {
	Config   *config.Config
	Origin   source.Origin
	Store    *store.Store
	Provider llm.Provider
	Audio    audio.Player
	Logger   *zap.Logger
}

func (s Services) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Loader returns the bundle loader for the configured paths.
func (s Services) Loader() *source.Loader {
	return &source.Loader{
		Origin:      s.Origin,
		LessonPath:  s.Config.LessonPath,
		LibraryPath: s.Config.LibraryPath,
		Logger:      s.logger(),
	}
}

// Engine returns a discovery engine tagged with sessionID.
func (s Services) Engine(sessionID string) *discovery.Engine {
	e := &discovery.Engine{
		Probe:       discovery.WithTimeout(s.Origin, s.Config.Probe.Timeout),
		Resolver:    assets.NewResolver(s.Config.LessonPath),
		Max:         s.Config.Probe.Max,
		Concurrency: s.Config.Probe.Concurrency,
		SessionID:   sessionID,
		Logger:      s.logger().With(zap.String("component", "discovery")),
	}
	if s.Store != nil {
		e.Recorder = s.Store.DiscoveryRepo()
	}
	return e
}

// NewLessonScreen starts a session for bundle and returns its page.
func (s Services) NewLessonScreen(ctx context.Context, bundle *source.Bundle) *lesson.Screen {
	log := s.logger()
	sess := viewer.New(bundle, viewer.Options{
		Resolver: assets.NewResolver(s.Config.LessonPath),
		Audio:    s.Audio,
		Muted:    s.Config.Muted,
		Logger:   log,
	})
	return lesson.New(sess, lesson.Deps{
		Ctx:         ctx,
		Discovery:   s.Engine(sess.ID),
		Probe:       discovery.WithTimeout(s.Origin, s.Config.Probe.Timeout),
		Coach:       coach.New(s.Provider, coach.DefaultConfig(), log.With(zap.String("component", "coach"))),
		SendDelay:   s.Config.Report.SendDelay,
		UnlockDelay: s.Config.Report.UnlockDelay,
		Logger:      log,
	})
}

// NewStartScreen returns the loading screen, which replaces itself with
// the lesson page or the error panel.
func (s Services) NewStartScreen(ctx context.Context) screen.Screen {
	return loading.New(ctx, s.Origin.String(), s.Loader().Load,
		func(b *source.Bundle) screen.Screen { return s.NewLessonScreen(ctx, b) },
		func(err error) screen.Screen { return errorpanel.New(err) },
	)
}
