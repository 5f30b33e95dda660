package combat

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/model"
)

func shotAlongX(wallDistance float64) Shot {
	return Shot{
		Origin:       geom.Vector2{X: 0, Y: 0},
		Angle:        0,
		WallDistance: wallDistance,
		Tolerance:    0.1,
		Range:        20 * cell,
		Damage:       5,
	}
}

func TestResolveShot(t *testing.T) {
	tests := []struct {
		name    string
		shot    Shot
		pos     geom.Vector2
		wantHit bool
	}{
		{"straight ahead", shotAlongX(500), geom.Vector2{X: 200, Y: 0}, true},
		{"behind the wall", shotAlongX(100), geom.Vector2{X: 150, Y: 0}, false},
		{"out of range", shotAlongX(5000), geom.Vector2{X: 21 * cell, Y: 0}, false},
		{"outside tolerance", shotAlongX(500), geom.Vector2{X: 200, Y: 200 * math.Tan(0.15)}, false},
		{"inside tolerance", shotAlongX(500), geom.Vector2{X: 200, Y: 200 * math.Tan(0.05)}, true},
		{"behind the shooter", shotAlongX(500), geom.Vector2{X: -200, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewRat(1, tt.pos)
			res := ResolveShot(tt.shot, []*Enemy{e}, FirstMatch)
			if res.Hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", res.Hit, tt.wantHit)
			}
			wantHealth := e.Stats.MaxHealth
			if tt.wantHit {
				wantHealth -= tt.shot.Damage
			}
			if e.Health != wantHealth {
				t.Fatalf("health = %d, want %d", e.Health, wantHealth)
			}
		})
	}
}

func TestResolveShotWrapsAngles(t *testing.T) {
	// aiming at -π, enemy sits at +π on the same line
	shot := shotAlongX(500)
	shot.Angle = -math.Pi + 0.01
	e := NewRat(1, geom.Vector2{X: -200, Y: 1})

	if res := ResolveShot(shot, []*Enemy{e}, FirstMatch); !res.Hit {
		t.Fatal("shot across the ±π seam should hit")
	}
}

func TestResolveShotPolicies(t *testing.T) {
	newPair := func() []*Enemy {
		return []*Enemy{
			NewRat(1, geom.Vector2{X: 300, Y: 0}),
			NewRat(2, geom.Vector2{X: 100, Y: 0}),
		}
	}

	tests := []struct {
		policy HitPolicy
		wantID int
	}{
		{FirstMatch, 1},
		{Nearest, 2},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			enemies := newPair()
			res := ResolveShot(shotAlongX(500), enemies, tt.policy)
			if !res.Hit || res.EnemyID != tt.wantID {
				t.Fatalf("result = %+v, want hit on %d", res, tt.wantID)
			}

			damaged := 0
			for _, e := range enemies {
				if e.Health < e.Stats.MaxHealth {
					damaged++
				}
			}
			if damaged != 1 {
				t.Fatalf("%d enemies damaged, want exactly one", damaged)
			}
		})
	}
}

func TestResolveShotSkipsDeadAndReportsKill(t *testing.T) {
	dead := NewRat(1, geom.Vector2{X: 100, Y: 0})
	dead.TakeDamage(100)
	live := NewRat(2, geom.Vector2{X: 200, Y: 0})
	live.Health = 5

	res := ResolveShot(shotAlongX(500), []*Enemy{dead, live}, FirstMatch)
	if !res.Hit || res.EnemyID != 2 || !res.Killed {
		t.Fatalf("result = %+v, want kill on 2", res)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != model.EnemyKilled {
		t.Fatalf("events = %v", kinds(res.Events))
	}
	if math.Abs(res.Distance-200) > 1e-9 {
		t.Fatalf("distance = %v", res.Distance)
	}
}

func TestParseHitPolicy(t *testing.T) {
	for in, want := range map[string]HitPolicy{"": FirstMatch, "first": FirstMatch, "nearest": Nearest} {
		got, err := ParseHitPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseHitPolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseHitPolicy("random"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
