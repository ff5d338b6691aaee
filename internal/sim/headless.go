package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/flappydof/internal/config"
	"github.com/vovakirdan/flappydof/internal/core"
)

// Script drives a headless session: a fixed number of ticks with the jump
// control pressed on every JumpEvery-th tick. JumpEvery 0 never jumps and
// JumpEvery 1 holds the control down, which jumps only once.
type Script struct {
	Seed      int64
	Ticks     int
	JumpEvery int
}

// Summary is the final state of a headless session.
type Summary struct {
	Seed           int64   `yaml:"seed"`
	Ticks          uint64  `yaml:"ticks"`
	Score          uint32  `yaml:"score"`
	Ended          bool    `yaml:"ended"`
	EndTick        uint64  `yaml:"end_tick,omitempty"`
	Reason         string  `yaml:"reason"`
	Spawns         int     `yaml:"spawns"`
	Pillars        int     `yaml:"pillars"`
	PlayerPos      float32 `yaml:"player_pos"`
	PlayerVelocity float32 `yaml:"player_velocity"`
	ScoreText      string  `yaml:"score_text"`
}

// String renders the summary as aligned key/value lines.
func (s Summary) String() string {
	var b strings.Builder
	row := func(k string, v any) {
		fmt.Fprintf(&b, "%-16s %v\n", k+":", v)
	}
	row("seed", s.Seed)
	row("ticks", s.Ticks)
	row("score", s.Score)
	row("ended", s.Ended)
	if s.Ended {
		row("end tick", s.EndTick)
	}
	row("reason", s.Reason)
	row("spawns", s.Spawns)
	row("pillars", s.Pillars)
	row("player pos", s.PlayerPos)
	row("player velocity", s.PlayerVelocity)
	row("display", s.ScoreText)
	return b.String()
}

// Simulate runs script against a fresh World and summarizes the result. The
// session keeps running after it ends, as an interactive one would.
func Simulate(cfg config.Config, script Script, opts ...Option) (Summary, error) {
	sink := NewScoreText()
	w, err := New(cfg, sink, script.Seed, opts...)
	if err != nil {
		return Summary{}, err
	}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	idle := core.NewInputFrame()

	for i := range script.Ticks {
		in := idle
		if script.JumpEvery > 0 && i%script.JumpEvery == 0 {
			in = jump
		}
		if _, err := w.Step(in); err != nil {
			return Summary{}, fmt.Errorf("sim: tick %d: %w", w.Tick(), err)
		}
	}

	player, err := w.Player()
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Seed:           script.Seed,
		Ticks:          w.Tick(),
		Score:          w.Score(),
		Ended:          w.Ended(),
		Reason:         w.Reason().String(),
		Spawns:         w.Spawns(),
		Pillars:        w.Store().Count(RolePillar),
		PlayerPos:      player.Pos,
		PlayerVelocity: player.Velocity,
		ScoreText:      sink.String(),
	}
	if s.Ended {
		s.EndTick = w.EndTick()
	}
	return s, nil
}
