package game

import (
	"math"
	"math/rand"

	"github.com/tverd/dashrun/internal/config"
	"github.com/tverd/dashrun/internal/core"
)

// Obstacle is a ground-anchored block the player must jump over.
// X is the left edge in fractional cells; it decreases as the world
// scrolls left.
type Obstacle struct {
	X      float64
	Width  int
	Height int
}

// Rect returns the collision rectangle, anchored at the ground line and
// extending upward by the obstacle height.
func (o Obstacle) Rect(groundY int) core.Rect {
	return core.NewRect(int(math.Round(o.X)), groundY-o.Height, o.Width, o.Height)
}

// Spawner owns the ordered obstacle sequence: spawning off the right
// edge, scrolling, and cleanup past the left edge. Sizes and gaps are
// drawn from the bounded ranges in the tuning config using an injected
// seeded RNG, so runs are deterministic per seed.
type Spawner struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	screenW    int
	nextSpawnX float64
	cfg        config.Obstacles
}

// NewSpawner creates a spawner for the given screen width and tuning.
func NewSpawner(seed int64, screenW int, cfg config.Obstacles) *Spawner {
	s := &Spawner{
		obstacles: make([]Obstacle, 0, 8),
		screenW:   screenW,
		cfg:       cfg,
	}
	s.Reset(seed)
	return s
}

// Reset clears all obstacles and reseeds the RNG. The first obstacle is
// scheduled one minimum gap past the right edge.
func (s *Spawner) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.nextSpawnX = float64(s.screenW + s.cfg.MinGap)
}

// SetScreenWidth updates the spawn edge after a resize.
func (s *Spawner) SetScreenWidth(screenW int) {
	s.screenW = screenW
}

// Advance scrolls every obstacle left by dx cells, drops obstacles that
// are fully off the left edge, and spawns until at least one obstacle is
// again pending beyond the right edge.
func (s *Spawner) Advance(dx float64) {
	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}

	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+float64(o.Width) > 0 {
			live = append(live, o)
		}
	}
	s.obstacles = live

	s.nextSpawnX -= dx
	for s.nextSpawnX <= float64(s.screenW) {
		s.spawn()
	}
}

// spawn appends one obstacle at the scheduled x and schedules the next
// spawn a random bounded gap further right.
func (s *Spawner) spawn() {
	width := s.randRange(s.cfg.MinWidth, s.cfg.MaxWidth)
	height := s.randRange(s.cfg.MinHeight, s.cfg.MaxHeight)

	s.obstacles = append(s.obstacles, Obstacle{
		X:      s.nextSpawnX,
		Width:  width,
		Height: height,
	})

	gap := s.randRange(s.cfg.MinGap, s.cfg.MaxGap)
	s.nextSpawnX += float64(width + gap)
}

// randRange draws a uniform integer from [min, max].
func (s *Spawner) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Obstacles returns the live obstacles in spawn order (leftmost first).
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Collides reports whether the player rectangle overlaps any obstacle.
// The first overlap found wins; there is no partial damage.
func (s *Spawner) Collides(player core.Rect, groundY int) bool {
	for _, o := range s.obstacles {
		if player.Intersects(o.Rect(groundY)) {
			return true
		}
	}
	return false
}
