// Package demo feeds synthetic sessions through the engine so the live
// stream and metrics have something to show without real client traffic.
package demo

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/titanx/halo-core/internal/halo"
	"github.com/titanx/halo-core/internal/stream"
)

type demoSession struct {
	id      string
	pattern string // steady, burst, stall
	events  []string
	idx     int
}

var eventTypes = []string{"page_view", "focus_shift", "scroll", "form_input", "hover", "click"}

type Generator struct {
	registry    *halo.Registry
	broadcaster *stream.Broadcaster
	log         *slog.Logger
	rng         *rand.Rand
	sessions    []*demoSession
}

func NewGenerator(registry *halo.Registry, broadcaster *stream.Broadcaster, log *slog.Logger) *Generator {
	return &Generator{
		registry:    registry,
		broadcaster: broadcaster,
		log:         log,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: []*demoSession{
			{id: "demo-onboarding-flow", pattern: "steady", events: eventTypes},
			{id: "demo-checkout-abandon", pattern: "burst", events: []string{"click", "form_input", "form_input", "hover"}},
			{id: "demo-docs-browse", pattern: "stall", events: []string{"page_view", "scroll", "scroll"}},
		},
	}
}

// Start begins emitting one synthetic event per tick until ctx is
// cancelled. It goes through the same engine operations as real traffic.
func (g *Generator) Start(ctx context.Context) {
	for _, s := range g.sessions {
		g.registry.Start(s.id)
		g.broadcaster.SessionStarted(s.id)
	}
	g.log.Info("demo generator started", "sessions", len(g.sessions))

	ticker := time.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		tick := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tick++
				g.emit(tick)
			}
		}
	}()
}

func (g *Generator) emit(tick int) {
	for _, s := range g.sessions {
		sig := g.signals(s.pattern, tick)
		summary := g.registry.Record(s.id, sig)

		eventType := s.events[s.idx%len(s.events)]
		s.idx++
		g.broadcaster.EventRecorded(s.id, eventType, summary)
	}
}

// signals fabricates plausible values per pattern. Any signal can be
// absent, mirroring real clients that only report what they observed.
func (g *Generator) signals(pattern string, tick int) halo.Signals {
	var sig halo.Signals

	base := 0.5 + 0.3*math.Sin(float64(tick)/7)
	switch pattern {
	case "burst":
		if tick%3 == 0 {
			sig.Friction = ptr(clamp(base + g.rng.Float64()*0.4))
			sig.Hesitation = ptr(clamp(base * 0.6))
		}
		sig.Pace = ptr(clamp(0.8 + g.rng.Float64()*0.2))
	case "stall":
		sig.Hesitation = ptr(clamp(base + 0.2))
		if tick%5 == 0 {
			sig.Pace = ptr(clamp(0.2 + g.rng.Float64()*0.1))
		}
	default: // steady
		sig.Friction = ptr(clamp(base * 0.5))
		sig.Hesitation = ptr(clamp(base * 0.4))
		sig.Pace = ptr(clamp(base))
	}
	return sig
}

func ptr(v float64) *float64 { return &v }

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
