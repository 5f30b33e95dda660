package world

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-maze/combat"
	"github.com/trvswgnr/gopher-maze/config"
	"github.com/trvswgnr/gopher-maze/fog"
	"github.com/trvswgnr/gopher-maze/level"
	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/raycast"
)

type Screen int

const (
	MainMenu Screen = iota
	Playing
	GameOver
)

func (s Screen) String() string {
	switch s {
	case MainMenu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// pickupReach is how close, in cells, the player must get to collect.
const pickupReach = 0.5

const messageDuration = 2.0

var pickupKinds = []model.PickupKind{
	model.PickupHealth,
	model.PickupAmmo,
	model.PickupKey,
	model.PickupTreasure,
}

// World owns one run of the game: the maze, the player and everything in it.
// It is driven from a single goroutine.
type World struct {
	Level   *level.Level
	Player  *model.Player
	State   *model.GameState
	Fog     *fog.FogOfWar
	Enemies []*combat.Enemy
	Sprites []*model.Sprite
	Screen  Screen

	// OnGameOver is called once when the player dies.
	OnGameOver func(*model.GameState)

	cfg    *config.Config
	rng    *rand.Rand
	policy combat.HitPolicy
	fov    float64
	frame  raycast.Frame
	proto  *combat.Enemy

	message      string
	messageTimer float64

	log *logrus.Entry
}

func New(cfg *config.Config, lvl *level.Level, rng *rand.Rand) (*World, error) {
	policy, err := combat.ParseHitPolicy(cfg.Combat.HitPolicy)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	stats := combat.RatStats()
	stats.MaxHealth = cfg.Enemy.Health
	stats.DetectionRange = cfg.Enemy.DetectionRange
	stats.AttackRange = cfg.Enemy.AttackRange
	stats.Speed = cfg.Enemy.Speed
	stats.Damage = cfg.Enemy.Damage
	stats.AttackCooldown = cfg.Enemy.AttackCooldown

	w := &World{
		Level:  lvl,
		Fog:    fog.ForGrid(lvl.Grid, cfg.World.VisionRadius),
		Screen: MainMenu,
		cfg:    cfg,
		rng:    rng,
		policy: policy,
		fov:    cfg.Screen.FovDegrees * math.Pi / 180,
		proto:  combat.NewEnemy(0, geom.Vector2{}, stats),
		log:    logger.For("world").WithField("level", lvl.Name),
	}
	if err := w.reset(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) reset() error {
	grid := w.Level.Grid
	cell := grid.CellSize()

	spawn := w.Level.Spawn
	w.Player = model.NewPlayer(spawn.Position.X, spawn.Position.Y, spawn.Angle)
	w.Player.MoveSpeed = w.cfg.Player.MoveSpeed
	w.Player.RotationSpeed = w.cfg.Player.RotationSpeed
	w.Player.Weapon.Damage = w.cfg.Weapon.Damage
	w.Player.Weapon.FireRate = w.cfg.Weapon.FireRate
	w.Player.Weapon.Range = w.cfg.Weapon.Range
	w.Player.Weapon.Tolerance = w.cfg.Weapon.Tolerance

	w.State = model.NewGameState()
	w.Fog.Reset()

	start := w.Level.SpawnPoint()
	enemies, err := combat.SpawnEnemies(grid, start, w.cfg.World.Enemies, w.rng, w.proto)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	w.Enemies = enemies

	w.Sprites = combat.SpawnSprites(grid, w.cfg.World.Sprites, w.rng)
	avoid := []geom.Vector2{start}
	for _, s := range w.Sprites {
		avoid = append(avoid, s.Position)
	}
	w.Sprites = append(w.Sprites, combat.SpawnPickups(grid, pickupKinds, w.cfg.World.Pickups, w.rng, avoid)...)

	w.message, w.messageTimer = "", 0
	w.frame = raycast.CastRays(w.Player.Pose, grid, w.fov, w.cfg.Screen.Rays)
	w.Fog.Update(w.Player.Pose, w.frame, grid)

	w.log.WithFields(logrus.Fields{
		"enemies": len(w.Enemies),
		"sprites": len(w.Sprites),
		"cell":    cell,
	}).Info("world ready")
	return nil
}

// Start leaves the main menu.
func (w *World) Start() {
	if w.Screen == MainMenu {
		w.Screen = Playing
	}
}

// Restart begins a fresh run on the same level with new spawns.
func (w *World) Restart() error {
	if err := w.reset(); err != nil {
		return err
	}
	w.Screen = Playing
	return nil
}

// Frame is the ray set cast on the last update.
func (w *World) Frame() raycast.Frame {
	return w.frame
}

func (w *World) Config() *config.Config {
	return w.cfg
}

// Message is the current HUD notice, empty when none is showing.
func (w *World) Message() string {
	return w.message
}

// Update advances the world by dt seconds. Commands are applied first, then
// the frame is cast once and shared by fog, pickups, enemies and shooting.
func (w *World) Update(dt float64, cmds []model.Command, trigger bool) []model.Event {
	if w.Screen != Playing {
		return nil
	}
	grid := w.Level.Grid
	cell := grid.CellSize()

	for _, cmd := range cmds {
		w.Player.Apply(cmd, grid)
	}

	w.frame = raycast.CastRays(w.Player.Pose, grid, w.fov, w.cfg.Screen.Rays)
	w.Fog.Update(w.Player.Pose, w.frame, grid)

	var events []model.Event
	for _, s := range w.Sprites {
		if !s.Collectible() || w.Player.DistanceTo(s.Position) >= pickupReach*cell {
			continue
		}
		s.Active = false
		events = append(events, model.Event{Kind: model.PickupCollected, Pickup: s.Pickup})
	}

	for _, e := range w.Enemies {
		events = append(events, e.Update(dt, w.Player.Position, grid)...)
	}

	events = append(events, w.shoot(dt, trigger)...)

	for _, e := range events {
		if e.Kind == model.PickupCollected {
			w.message = w.State.Collect(e.Pickup)
			w.messageTimer = messageDuration
		}
	}
	w.State.Apply(withoutPickups(events))

	w.messageTimer = math.Max(0, w.messageTimer-dt)
	if w.messageTimer == 0 {
		w.message = ""
	}

	if w.State.IsDead() {
		w.Screen = GameOver
		w.log.WithFields(logrus.Fields{
			"score": w.State.Score,
			"kills": w.State.Kills,
		}).Info("player died")
		if w.OnGameOver != nil {
			w.OnGameOver(w.State)
		}
	}
	return events
}

func (w *World) shoot(dt float64, trigger bool) []model.Event {
	weapon := w.Player.Weapon
	weapon.Update(dt)

	if !trigger || w.State.Ammo <= 0 {
		weapon.StopFiring()
		return nil
	}
	if !weapon.Fire() {
		return nil
	}
	w.State.UseAmmo(1)
	events := []model.Event{{Kind: model.WeaponFired}}

	wallDistance := math.Inf(1)
	if r, ok := raycast.CastRay(w.Player.Pose, w.Level.Grid, w.Player.Angle); ok {
		wallDistance = r.Distance
	}

	res := combat.ResolveShot(combat.Shot{
		Origin:       w.Player.Position,
		Angle:        w.Player.Angle,
		WallDistance: wallDistance,
		Tolerance:    weapon.Tolerance,
		Range:        weapon.Range * w.Level.Grid.CellSize(),
		Damage:       weapon.Damage,
	}, w.Enemies, w.policy)
	if res.Hit {
		w.log.WithFields(logrus.Fields{
			"enemy":    res.EnemyID,
			"distance": res.Distance,
			"killed":   res.Killed,
		}).Debug("shot hit")
	}
	return append(events, res.Events...)
}

// pickups are applied through Collect so the HUD gets its message
func withoutPickups(events []model.Event) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.Kind != model.PickupCollected {
			out = append(out, e)
		}
	}
	return out
}

// VisibleEnemies returns the positions of living enemies standing on explored
// cells.
func (w *World) VisibleEnemies() []geom.Vector2 {
	cell := w.Level.Grid.CellSize()
	var out []geom.Vector2
	for _, e := range w.Enemies {
		if !e.IsAlive() {
			continue
		}
		if w.Fog.IsExplored(model.WorldToGrid(e.Position.X, e.Position.Y, cell)) {
			out = append(out, e.Position)
		}
	}
	return out
}
