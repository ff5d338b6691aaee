// Package sim implements the fixed-step simulation of the pillar avoider:
// a player under gravity jumps between pillar pairs that scroll toward it,
// scoring once per spawned pair until it collides or leaves the play field.
//
// A World is driven by a single goroutine. The host calls Frame once per
// display frame (or Step once per fixed tick) and reads Transforms between
// calls; no method may run concurrently with another.
package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappydof/internal/config"
	"github.com/vovakirdan/flappydof/internal/core"
)

// World is the simulation context. It owns the body store, the spawn timer,
// the random source, the score and the game-ended flag.
type World struct {
	cfg      config.Config
	store    *Store
	clock    *FixedClock
	gate     InputGate
	timer    SpawnTimer
	spawner  *Spawner
	detector Detector
	sink     ScoreSink
	logger   *log.Logger

	score   uint32
	ended   bool
	reason  Reason
	tick    uint64
	endTick uint64
	spawns  int
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger for simulation events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithAssets overrides where the player sprite dimensions come from.
// By default they are read from the configuration.
func WithAssets(src AssetSource) Option {
	return func(w *World) {
		w.detector.Assets = src
	}
}

// New creates a session with the player at its configured start state.
// sink receives the score display text and must not be nil.
func New(cfg config.Config, sink ScoreSink, seed int64, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, missingEntity("score display")
	}

	spawner, err := NewSpawner(seed, cfg.Screen.HalfSize, cfg.Pillar.Span)
	if err != nil {
		return nil, err
	}

	w := &World{
		cfg:     cfg,
		store:   NewStore(),
		clock:   NewFixedClock(cfg.Timing.FixedDelta(), cfg.Timing.MaxTicksPerFrame),
		timer:   NewSpawnTimer(cfg.Spawn.Interval.Std()),
		spawner: spawner,
		detector: Detector{
			Assets:   cfg,
			HalfSize: cfg.Screen.HalfSize,
			ScaleX:   cfg.Pillar.ScaleX,
			ScaleY:   cfg.Pillar.ScaleY,
		},
		sink:   sink,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.store.Spawn(RolePlayer, KinematicBody{
		Pos:      cfg.Player.StartPos,
		Velocity: cfg.Player.StartVelocity,
	}, 0)
	w.sink.SetScoreText(FormatScore(w.score))

	return w, nil
}

// Step applies the input gate and then runs exactly one fixed tick.
func (w *World) Step(in core.InputFrame) (core.StepResult, error) {
	var res core.StepResult
	if err := w.applyInput(in); err != nil {
		return res, err
	}
	if err := w.runTick(&res); err != nil {
		return res, err
	}
	res.State = w.State()
	return res, nil
}

// Frame applies the input gate once and then runs every fixed tick that
// elapsed real time has made due.
func (w *World) Frame(elapsed time.Duration, in core.InputFrame) (core.StepResult, error) {
	var res core.StepResult
	if err := w.applyInput(in); err != nil {
		return res, err
	}
	n := w.clock.Advance(elapsed)
	for range n {
		if err := w.runTick(&res); err != nil {
			return res, err
		}
	}
	res.State = w.State()
	return res, nil
}

func (w *World) applyInput(in core.InputFrame) error {
	if !w.gate.Admit(in.Has(core.ActionJump), w.ended) {
		return nil
	}
	player, err := w.store.Player()
	if err != nil {
		return err
	}
	Jump(&player.Kinematic, w.cfg.Movement)
	return nil
}

// runTick executes one fixed tick: integrate, despawn, spawn, detect.
func (w *World) runTick(res *core.StepResult) error {
	dt := w.clock.StepSeconds()

	player, err := w.store.Player()
	if err != nil {
		return err
	}
	IntegratePlayer(&player.Kinematic, w.cfg.Movement.Gravity, dt)
	for pillar := range w.store.WithRole(RolePillar) {
		ScrollPillar(&pillar.Kinematic, w.cfg.Pillar.Velocity, dt)
	}

	if w.cfg.Pillar.Despawn {
		limit := w.cfg.Pillar.DespawnX
		removed := w.store.RemoveFunc(func(b *Body) bool {
			return b.Role == RolePillar && b.Kinematic.Pos < limit
		})
		if removed > 0 {
			w.logger.Debug("pillars despawned", "count", removed, "tick", w.tick)
		}
	}

	if w.timer.Tick(w.clock.Step()) {
		w.spawnPair()
		res.Spawns++
	}

	reason, err := w.detector.Check(w.store)
	if err != nil {
		return fmt.Errorf("sim: collision check: %w", err)
	}
	if reason != ReasonNone && !w.ended {
		w.ended = true
		w.reason = reason
		w.endTick = w.tick
		res.Ended = true
		w.logger.Info("game ended", "reason", reason, "tick", w.tick, "score", w.score)
	}

	w.tick++
	res.Ticks++
	return nil
}

// spawnPair creates a pillar pair around a freshly drawn center. Spawning
// continues after the session ends; only the score increment is gated.
func (w *World) spawnPair() {
	h := w.spawner.Draw()
	upper, lower := PairCenters(h, w.cfg.Pillar.Span)
	kin := KinematicBody{
		Pos:      w.cfg.Pillar.SpawnX,
		Velocity: -w.cfg.Pillar.Velocity,
	}
	w.store.Spawn(RolePillar, kin, upper)
	w.store.Spawn(RolePillar, kin, lower)
	w.spawns++

	if !w.ended {
		w.score++
	}
	w.sink.SetScoreText(FormatScore(w.score))

	w.logger.Debug("pillars spawned",
		"h", h,
		"score", w.score,
		"pillars", w.store.Count(RolePillar),
	)
}

// Transforms appends the display transform of every body to dst using the
// clock's progress toward the next tick.
func (w *World) Transforms(dst []Transform) []Transform {
	return w.TransformsAt(dst, w.clock.Fraction())
}

// TransformsAt appends the display transform of every body to dst for the
// given progress alpha toward the next tick.
func (w *World) TransformsAt(dst []Transform, alpha float32) []Transform {
	dt := w.clock.StepSeconds()
	for b := range w.store.All() {
		dst = append(dst, TransformOf(b, dt, alpha))
	}
	return dst
}

// State returns the current session state.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.score,
		GameOver: w.ended,
		Tick:     w.tick,
	}
}

// Player returns a copy of the player's kinematic state.
func (w *World) Player() (KinematicBody, error) {
	p, err := w.store.Player()
	if err != nil {
		return KinematicBody{}, err
	}
	return p.Kinematic, nil
}

// Store exposes the body store. Callers must not mutate it while the host
// loop is running.
func (w *World) Store() *Store { return w.store }

// Config returns the configuration the session was created with.
func (w *World) Config() config.Config { return w.cfg }

// Score returns the current score.
func (w *World) Score() uint32 { return w.score }

// Ended reports whether the session reached its terminal state.
func (w *World) Ended() bool { return w.ended }

// Reason returns why the session ended, or ReasonNone.
func (w *World) Reason() Reason { return w.reason }

// EndTick returns the tick on which the session ended. It is only
// meaningful once Ended is true.
func (w *World) EndTick() uint64 { return w.endTick }

// Tick returns the number of completed fixed ticks.
func (w *World) Tick() uint64 { return w.tick }

// Spawns returns the number of pillar pairs spawned so far.
func (w *World) Spawns() int { return w.spawns }

// Fraction returns the progress toward the next fixed tick in [0, 1).
func (w *World) Fraction() float32 { return w.clock.Fraction() }
