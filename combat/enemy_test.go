package combat

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/model"
)

const cell = 64.0

func corridor(t *testing.T, length int) *model.Grid {
	t.Helper()
	rows := []string{
		strings.Repeat("1", length),
		"1" + strings.Repeat(" ", length-2) + "1",
		"1" + strings.Repeat(" ", length-2) + "1",
		"1" + strings.Repeat(" ", length-2) + "1",
		strings.Repeat("1", length),
	}
	g, err := model.NewGrid(rows, cell)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func kinds(events []model.Event) []model.EventKind {
	out := make([]model.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestStateHysteresis(t *testing.T) {
	g := corridor(t, 40)
	start := geom.Vector2{X: 2 * cell, Y: 2.5 * cell}
	e := NewRat(1, start)

	// out of detection range: nothing happens
	if ev := e.Update(0.01, geom.Vector2{X: start.X + 350, Y: start.Y}, g); len(ev) != 0 || e.State != Idle {
		t.Fatalf("state = %v events = %v, want idle and no events", e.State, ev)
	}

	ev := e.Update(0.01, geom.Vector2{X: start.X + 250, Y: start.Y}, g)
	if e.State != Chase {
		t.Fatalf("state = %v, want chase", e.State)
	}
	if len(ev) != 1 || ev[0].Kind != model.EnemyStartChase || ev[0].EnemyID != 1 {
		t.Fatalf("events = %v, want start-chase", kinds(ev))
	}
	if e.Position != start {
		t.Fatal("enemy should not move on the tick it starts chasing")
	}

	// between detection and detection*1.5 it keeps chasing and closes in
	before := e.Position.X
	e.Update(0.1, geom.Vector2{X: e.Position.X + 400, Y: start.Y}, g)
	if e.State != Chase {
		t.Fatalf("state = %v, want chase", e.State)
	}
	if got := e.Position.X - before; got < 7.99 || got > 8.01 {
		t.Fatalf("moved %v, want speed*dt = 8", got)
	}

	e.Update(0.01, geom.Vector2{X: e.Position.X + 460, Y: start.Y}, g)
	if e.State != Idle {
		t.Fatalf("state = %v, want idle beyond 1.5x detection", e.State)
	}
}

func TestAttackHysteresis(t *testing.T) {
	g := corridor(t, 20)
	pos := geom.Vector2{X: 5 * cell, Y: 2.5 * cell}
	e := NewRat(0, pos)
	e.State = Chase

	e.Update(0.01, geom.Vector2{X: pos.X + 30, Y: pos.Y}, g)
	if e.State != Attack {
		t.Fatalf("state = %v, want attack", e.State)
	}

	e.Update(0.01, geom.Vector2{X: pos.X + 45, Y: pos.Y}, g)
	if e.State != Attack {
		t.Fatalf("state = %v, want attack inside 1.2x range", e.State)
	}

	e.Update(0.01, geom.Vector2{X: pos.X + 50, Y: pos.Y}, g)
	if e.State != Chase {
		t.Fatalf("state = %v, want chase beyond 1.2x range", e.State)
	}
}

func TestAttackLandsOnImpactFrame(t *testing.T) {
	g := corridor(t, 20)
	pos := geom.Vector2{X: 5 * cell, Y: 2.5 * cell}
	player := geom.Vector2{X: pos.X + 20, Y: pos.Y}

	e := NewRat(3, pos)
	e.State = Attack
	e.Animation = model.NewAnimation(model.AnimAttack, AttackClip, e.Stats.FrameDuration)

	if ev := e.Update(0.01, player, g); len(ev) != 0 {
		t.Fatalf("frame 0 dealt damage: %v", kinds(ev))
	}

	// push the clip onto the impact frame
	e.Update(e.Stats.FrameDuration, player, g)
	if e.Animation.Frame != ImpactFrame {
		t.Fatalf("frame = %d, want %d", e.Animation.Frame, ImpactFrame)
	}

	ev := e.Update(0.01, player, g)
	if len(ev) != 2 || ev[0].Kind != model.DamageDealt || ev[1].Kind != model.EnemyAttack {
		t.Fatalf("events = %v, want damage then attack", kinds(ev))
	}
	if ev[0].Amount != 10 || ev[0].EnemyID != 3 {
		t.Fatalf("damage event = %+v", ev[0])
	}
	if e.AttackTimer != e.Stats.AttackCooldown {
		t.Fatalf("attack timer = %v, want reset to cooldown", e.AttackTimer)
	}

	if ev := e.Update(0.01, player, g); len(ev) != 0 {
		t.Fatalf("attack repeated during cooldown: %v", kinds(ev))
	}
}

func TestAttackLandsOncePerCycleWithoutCooldown(t *testing.T) {
	g := corridor(t, 20)
	pos := geom.Vector2{X: 5 * cell, Y: 2.5 * cell}
	player := geom.Vector2{X: pos.X + 10, Y: pos.Y}

	stats := RatStats()
	stats.AttackCooldown = 0
	e := NewEnemy(1, pos, stats)
	e.State = Attack
	e.Animation = model.NewAnimation(model.AnimAttack, AttackClip, stats.FrameDuration)

	// three ticks per frame, three frames per cycle
	const dt = 0.05
	for cycle := 0; cycle < 3; cycle++ {
		hits := 0
		for tick := 0; tick < 9; tick++ {
			for _, ev := range e.Update(dt, player, g) {
				if ev.Kind == model.DamageDealt {
					hits++
				}
			}
		}
		if hits != 1 {
			t.Fatalf("cycle %d: %d hits, want 1", cycle, hits)
		}
	}
}

func TestTakeDamageAndDeath(t *testing.T) {
	e := NewRat(7, geom.Vector2{X: 100, Y: 100})

	ev := e.TakeDamage(5)
	if len(ev) != 1 || ev[0].Kind != model.EnemyHurt {
		t.Fatalf("events = %v, want hurt", kinds(ev))
	}
	if e.Health != 15 || !e.Flashing() {
		t.Fatalf("health = %d flashing = %v", e.Health, e.Flashing())
	}

	ev = e.TakeDamage(50)
	if len(ev) != 1 || ev[0].Kind != model.EnemyKilled || ev[0].EnemyID != 7 {
		t.Fatalf("events = %v, want kill", kinds(ev))
	}
	if e.Health != 0 || e.State != Dead || e.IsAlive() {
		t.Fatalf("health = %d state = %v", e.Health, e.State)
	}
	if e.Animation.Kind != model.AnimDeath {
		t.Fatalf("animation = %v, want death", e.Animation.Kind)
	}

	if ev := e.TakeDamage(5); ev != nil {
		t.Fatalf("dead enemy produced events %v", kinds(ev))
	}
}

func TestDeadEnemyOnlyAnimates(t *testing.T) {
	g := corridor(t, 20)
	pos := geom.Vector2{X: 5 * cell, Y: 2.5 * cell}
	e := NewRat(0, pos)
	e.TakeDamage(100)

	for i := 0; i < 10; i++ {
		if ev := e.Update(0.2, geom.Vector2{X: pos.X + 10, Y: pos.Y}, g); ev != nil {
			t.Fatalf("dead enemy emitted %v", kinds(ev))
		}
	}
	if e.Position != pos {
		t.Fatal("dead enemy moved")
	}
	if !e.Animation.Finished || e.TextureFrame() != DeathClip.BaseFrame+DeathClip.FrameCount-1 {
		t.Fatalf("death clip should hold its last frame, got %d", e.TextureFrame())
	}
	if e.Flashing() {
		t.Fatal("flash should have worn off")
	}
}

func TestChaseSlidesAlongWalls(t *testing.T) {
	g := corridor(t, 20)
	// hugging the top wall, player is up and to the right
	pos := geom.Vector2{X: 5 * cell, Y: 1.05 * cell}
	e := NewRat(0, pos)
	e.State = Chase

	e.Update(0.5, geom.Vector2{X: pos.X + 100, Y: pos.Y - 100}, g)
	if e.Position.X <= pos.X {
		t.Fatal("enemy should slide along the wall")
	}
	if e.Position.Y != pos.Y {
		t.Fatalf("enemy entered the wall: y = %v", e.Position.Y)
	}
}

func TestDetectionBoundaryDoesNotThrash(t *testing.T) {
	g := corridor(t, 40)
	e := NewRat(0, geom.Vector2{X: 2 * cell, Y: 2.5 * cell})
	r := e.Stats.DetectionRange

	e.Update(0.001, geom.Vector2{X: e.Position.X + r - 1, Y: e.Position.Y}, g)
	if e.State != Chase {
		t.Fatalf("state = %v, want chase just inside detection", e.State)
	}

	for i := 0; i < 20; i++ {
		offset := r + 1
		if i%2 == 1 {
			offset = r - 1
		}
		e.Update(0.001, geom.Vector2{X: e.Position.X + offset, Y: e.Position.Y}, g)
		if e.State != Chase {
			t.Fatalf("tick %d: state = %v, want chase inside the 1.5x band", i, e.State)
		}
	}
}

func TestStateTransitionsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure("debug", "json", &buf)
	t.Cleanup(func() { logger.Configure("info", "text", os.Stderr) })

	g := corridor(t, 20)
	pos := geom.Vector2{X: 5 * cell, Y: 2.5 * cell}
	e := NewRat(4, pos)

	e.Update(0.01, geom.Vector2{X: pos.X + 100, Y: pos.Y}, g)
	e.Update(0.01, geom.Vector2{X: pos.X + 20, Y: pos.Y}, g)
	e.TakeDamage(e.Health)

	var got []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if entry["component"] != "combat" || entry["level"] != "debug" || entry["enemy"] != float64(4) {
			t.Fatalf("entry = %v", entry)
		}
		got = append(got, entry["from"].(string)+">"+entry["to"].(string))
	}

	want := []string{"idle>chase", "chase>attack", "attack>dead"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("transitions = %v, want %v", got, want)
	}
}
