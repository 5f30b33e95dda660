package combat

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go"
	"github.com/harbdog/raycaster-go/geom"

	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/model"
)

var log = logger.For("combat")

type State int

const (
	Idle State = iota
	Chase
	Attack
	Dead
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Chase:
		return "chase"
	case Attack:
		return "attack"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// ImpactFrame is the attack frame on which a blow lands.
const ImpactFrame = 1

var (
	WalkClip   = model.Clip{BaseFrame: 0, FrameCount: 4, Loop: true}
	AttackClip = model.Clip{BaseFrame: 4, FrameCount: 3, Loop: true}
	DeathClip  = model.Clip{BaseFrame: 7, FrameCount: 3, Loop: false}
)

// Stats are the tunables shared by every enemy cloned from a prototype.
type Stats struct {
	MaxHealth      int
	DetectionRange float64
	AttackRange    float64
	Speed          float64
	Damage         int
	AttackCooldown float64
	FrameDuration  float64
	FlashDuration  float64
}

func RatStats() Stats {
	return Stats{
		MaxHealth:      20,
		DetectionRange: 300,
		AttackRange:    40,
		Speed:          80,
		Damage:         10,
		AttackCooldown: 1.0,
		FrameDuration:  0.15,
		FlashDuration:  0.2,
	}
}

type Enemy struct {
	model.Entity
	ID     int
	State  State
	Health int
	Stats  Stats

	Animation   model.Animation
	AttackTimer float64
	FlashTimer  float64

	// struck is set once the blow of the current attack cycle has landed.
	struck bool
}

// NewEnemy builds an idle enemy at pos. The returned value is also used as the
// prototype for spawning.
func NewEnemy(id int, pos geom.Vector2, stats Stats) *Enemy {
	return &Enemy{
		Entity: model.Entity{
			Position: pos,
			Scale:    0.7,
			Anchor:   raycaster.AnchorBottom,
			Active:   true,
			MapColor: color.RGBA{0, 255, 0, 255},
		},
		ID:        id,
		State:     Idle,
		Health:    stats.MaxHealth,
		Stats:     stats,
		Animation: model.NewAnimation(model.AnimWalk, WalkClip, stats.FrameDuration),
	}
}

func NewRat(id int, pos geom.Vector2) *Enemy {
	return NewEnemy(id, pos, RatStats())
}

func (e *Enemy) IsAlive() bool {
	return e.State != Dead
}

// Flashing reports whether the damage tint should be drawn.
func (e *Enemy) Flashing() bool {
	return e.FlashTimer > 0
}

// TextureFrame is the frame of the enemy strip to draw.
func (e *Enemy) TextureFrame() int {
	return e.Animation.TextureFrame()
}

func (e *Enemy) setState(next State) {
	if e.State == next {
		return
	}
	log.WithFields(logrus.Fields{
		"enemy": e.ID,
		"from":  e.State.String(),
		"to":    next.String(),
	}).Debug("enemy state changed")
	e.State = next
}

// Update advances the enemy by dt seconds against the player's position and
// returns the events it produced.
func (e *Enemy) Update(dt float64, player geom.Vector2, grid *model.Grid) []model.Event {
	e.AttackTimer = math.Max(0, e.AttackTimer-dt)
	e.FlashTimer = math.Max(0, e.FlashTimer-dt)

	if e.State == Dead {
		e.Animation = e.Animation.Advance(dt)
		return nil
	}

	dx := player.X - e.Position.X
	dy := player.Y - e.Position.Y
	d := math.Hypot(dx, dy)

	var events []model.Event
	switch e.State {
	case Idle:
		if d < e.Stats.DetectionRange {
			e.setState(Chase)
			e.Animation = e.Animation.Switch(model.AnimWalk, WalkClip)
			return []model.Event{{Kind: model.EnemyStartChase, EnemyID: e.ID}}
		}

	case Chase:
		switch {
		case d < e.Stats.AttackRange:
			e.setState(Attack)
			e.struck = false
			e.Animation = e.Animation.Switch(model.AnimAttack, AttackClip)
		case d > e.Stats.DetectionRange*1.5:
			e.setState(Idle)
		case d >= 1:
			step := e.Stats.Speed * dt / d
			delta := geom.Vector2{X: dx * step, Y: dy * step}
			if next, ok := model.SlideMove(grid, e.Position, delta); ok {
				e.Position = next
			}
		}

	case Attack:
		if d > e.Stats.AttackRange*1.2 {
			e.setState(Chase)
			e.Animation = e.Animation.Switch(model.AnimWalk, WalkClip)
			break
		}
		if e.Animation.Frame != ImpactFrame {
			e.struck = false
			break
		}
		if e.AttackTimer == 0 && !e.struck {
			e.struck = true
			e.AttackTimer = e.Stats.AttackCooldown
			events = append(events,
				model.Event{Kind: model.DamageDealt, Amount: e.Stats.Damage, EnemyID: e.ID},
				model.Event{Kind: model.EnemyAttack, EnemyID: e.ID},
			)
		}
	}

	e.Animation = e.Animation.Advance(dt)
	return events
}

// TakeDamage applies a hit. Dead enemies ignore further damage.
func (e *Enemy) TakeDamage(amount int) []model.Event {
	if e.State == Dead {
		return nil
	}

	e.Health -= amount
	e.FlashTimer = e.Stats.FlashDuration

	if e.Health <= 0 {
		e.Health = 0
		e.setState(Dead)
		e.Animation = e.Animation.Switch(model.AnimDeath, DeathClip)
		return []model.Event{{Kind: model.EnemyKilled, EnemyID: e.ID}}
	}
	return []model.Event{{Kind: model.EnemyHurt, Amount: amount, EnemyID: e.ID}}
}
