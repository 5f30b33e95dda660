package model

import "math"

var (
	weaponIdleClip   = Clip{BaseFrame: 0, FrameCount: 1, Loop: true}
	weaponFiringClip = Clip{BaseFrame: 1, FrameCount: 3, Loop: true}
)

// Weapon is a hitscan gun. Cooldowns are counted down in seconds by Update.
type Weapon struct {
	Name string
	// Damage is applied to the single enemy a shot resolves to.
	Damage int
	// FireRate is the minimum time between shots in seconds.
	FireRate float64
	// Range is the maximum hit distance in cells.
	Range float64
	// Tolerance is the aiming half-angle in radians.
	Tolerance float64

	cooldown  float64
	firing    bool
	animation Animation
}

func NewMachineGun() *Weapon {
	return &Weapon{
		Name:      "machine gun",
		Damage:    5,
		FireRate:  0.05,
		Range:     20,
		Tolerance: 0.1,
		animation: NewAnimation(AnimIdle, weaponIdleClip, 0.05),
	}
}

// Fire starts a shot when the weapon is off cooldown.
func (w *Weapon) Fire() bool {
	if w.cooldown > 0 {
		return false
	}

	w.cooldown = w.FireRate
	w.firing = true
	w.animation = w.animation.Switch(AnimFiring, weaponFiringClip)
	w.animation.Frame = 0
	w.animation.Timer = 0
	return true
}

func (w *Weapon) StopFiring() {
	w.firing = false
}

func (w *Weapon) IsFiring() bool {
	return w.firing
}

func (w *Weapon) OnCooldown() bool {
	return w.cooldown > 0
}

func (w *Weapon) Update(dt float64) {
	w.cooldown = math.Max(0, w.cooldown-dt)

	if w.firing {
		w.animation = w.animation.Switch(AnimFiring, weaponFiringClip)
	} else {
		w.animation = w.animation.Switch(AnimIdle, weaponIdleClip)
	}
	w.animation = w.animation.Advance(dt)
}

// TextureFrame is the frame of the weapon strip to draw.
func (w *Weapon) TextureFrame() int {
	return w.animation.TextureFrame()
}
