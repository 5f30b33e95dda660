package combat

import (
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/model"
)

// HitPolicy decides which enemy a shot lands on when several line up.
type HitPolicy int

const (
	// FirstMatch damages the first candidate in enemy order.
	FirstMatch HitPolicy = iota
	// Nearest damages the closest candidate.
	Nearest
)

func (p HitPolicy) String() string {
	if p == Nearest {
		return "nearest"
	}
	return "first"
}

// ParseHitPolicy accepts "first" or "nearest".
func ParseHitPolicy(s string) (HitPolicy, error) {
	switch s {
	case "", "first":
		return FirstMatch, nil
	case "nearest":
		return Nearest, nil
	}
	return FirstMatch, fmt.Errorf("unknown hit policy %q", s)
}

// Shot is one hitscan trigger pull. WallDistance is the distance to the wall
// straight ahead; Range is in world units.
type Shot struct {
	Origin       geom.Vector2
	Angle        float64
	WallDistance float64
	Tolerance    float64
	Range        float64
	Damage       int
}

type ShotResult struct {
	Hit      bool
	EnemyID  int
	Distance float64
	Killed   bool
	Events   []model.Event
}

// ResolveShot finds the enemy the shot lands on and damages it. At most one
// enemy is hit; enemies behind the wall ahead or out of range are ignored.
func ResolveShot(shot Shot, enemies []*Enemy, policy HitPolicy) ShotResult {
	var target *Enemy
	best := math.Inf(1)

	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}

		dx := e.Position.X - shot.Origin.X
		dy := e.Position.Y - shot.Origin.Y
		d := math.Hypot(dx, dy)
		if d >= shot.WallDistance || d > shot.Range {
			continue
		}

		diff := model.AngleDiff(math.Atan2(dy, dx), shot.Angle)
		if diff >= shot.Tolerance {
			continue
		}

		if policy == FirstMatch {
			target, best = e, d
			break
		}
		if d < best {
			target, best = e, d
		}
	}

	if target == nil {
		return ShotResult{}
	}

	events := target.TakeDamage(shot.Damage)
	return ShotResult{
		Hit:      true,
		EnemyID:  target.ID,
		Distance: best,
		Killed:   !target.IsAlive(),
		Events:   events,
	}
}
