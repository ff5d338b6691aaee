package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// SpawnTimer is a repeating timer advanced once per fixed tick.
type SpawnTimer struct {
	Interval time.Duration
	Elapsed  time.Duration
}

// NewSpawnTimer creates a timer that fires every interval.
func NewSpawnTimer(interval time.Duration) SpawnTimer {
	return SpawnTimer{Interval: interval}
}

// Tick advances the timer by dt and reports whether it fired. The timer fires
// at most once per call no matter how many intervals elapsed; the remainder
// past the last interval boundary is kept.
func (t *SpawnTimer) Tick(dt time.Duration) bool {
	if t.Interval <= 0 {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Interval {
		return false
	}
	t.Elapsed %= t.Interval
	return true
}

// Spawner draws the vertical center of each pillar pair from a seeded source.
// The same seed always yields the same sequence of centers.
type Spawner struct {
	rng    *rand.Rand
	lo, hi float32
}

// NewSpawner creates a spawner drawing centers in
// [-halfSize+span, halfSize-span).
func NewSpawner(seed int64, halfSize, span float32) (*Spawner, error) {
	lo, hi := -halfSize+span, halfSize-span
	if !(lo < hi) {
		return nil, fmt.Errorf("sim: empty spawn range [%v, %v)", lo, hi)
	}
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		lo:  lo,
		hi:  hi,
	}, nil
}

// Range returns the half-open interval centers are drawn from.
func (s *Spawner) Range() (lo, hi float32) {
	return s.lo, s.hi
}

// Draw returns the next uniformly distributed center.
func (s *Spawner) Draw() float32 {
	h := s.lo + s.rng.Float32()*(s.hi-s.lo)
	if h >= s.hi {
		// Rounding can land exactly on the open bound.
		h = math.Nextafter32(s.hi, s.lo)
	}
	return h
}

// PairCenters returns the vertical centers of the upper and lower pillar of
// a pair around h.
func PairCenters(h, span float32) (upper, lower float32) {
	return h + span, h - span
}

// FormatScore renders the score display text.
func FormatScore(score uint32) string {
	return fmt.Sprintf("Score: %d", score)
}

// ScoreSink receives the score display text each time a pair spawns.
type ScoreSink interface {
	SetScoreText(text string)
}

// ScoreText is a ScoreSink that keeps the latest text.
type ScoreText struct {
	text string
}

// NewScoreText creates a sink holding the initial "Score: 0" text.
func NewScoreText() *ScoreText {
	return &ScoreText{text: FormatScore(0)}
}

// SetScoreText implements ScoreSink.
func (s *ScoreText) SetScoreText(text string) {
	s.text = text
}

// String returns the latest score text.
func (s *ScoreText) String() string {
	return s.text
}
