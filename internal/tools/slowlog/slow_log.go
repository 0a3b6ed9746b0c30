package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger times named breakpoints and writes their durations at debug level.
type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log     *zerolog.Logger
	started map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.started[name] = time.Now()
	s.Unlock()
}

func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	duration := time.Since(s.started[name])
	delete(s.started, name)

	s.log.Debug().
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	return duration
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:     &logger,
		started: make(map[string]time.Time),
	}
}
