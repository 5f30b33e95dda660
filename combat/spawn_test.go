package combat

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/model"
)

func openField(t *testing.T, size int) *model.Grid {
	t.Helper()
	rows := make([]string, size)
	for y := range rows {
		if y == 0 || y == size-1 {
			rows[y] = strings.Repeat("1", size)
			continue
		}
		rows[y] = "1" + strings.Repeat(" ", size-2) + "1"
	}
	g, err := model.NewGrid(rows, cell)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestSpawnEnemies(t *testing.T) {
	g := openField(t, 30)
	player := model.GridToWorld(3, 3, cell)
	proto := NewRat(0, geom.Vector2{})

	enemies, err := SpawnEnemies(g, player, 8, rand.New(rand.NewSource(1)), proto)
	if err != nil {
		t.Fatalf("SpawnEnemies: %v", err)
	}
	if len(enemies) != 8 {
		t.Fatalf("spawned %d, want 8", len(enemies))
	}

	for i, e := range enemies {
		if e.ID != i {
			t.Errorf("enemy %d has id %d", i, e.ID)
		}
		if e == proto {
			t.Fatal("enemy shares the prototype")
		}
		gx, gy := model.WorldToGrid(e.Position.X, e.Position.Y, cell)
		if gx < 2 || gy < 2 || gx >= g.Width()-2 || gy >= g.Height()-2 {
			t.Errorf("enemy %d at (%d,%d) too close to the border", i, gx, gy)
		}
		if math.Hypot(e.Position.X-player.X, e.Position.Y-player.Y) <= 5*cell {
			t.Errorf("enemy %d spawned next to the player", i)
		}
		for _, o := range enemies[:i] {
			if math.Hypot(e.Position.X-o.Position.X, e.Position.Y-o.Position.Y) < 3*cell {
				t.Errorf("enemies %d and %d closer than 3 cells", i, o.ID)
			}
		}
		if e.Health != proto.Health || e.Stats != proto.Stats || e.State != Idle {
			t.Errorf("enemy %d not cloned from prototype: %+v", i, e)
		}
	}

	enemies[0].TakeDamage(5)
	if proto.Health != proto.Stats.MaxHealth {
		t.Fatal("damaging a clone changed the prototype")
	}
}

func TestSpawnEnemiesIsSeeded(t *testing.T) {
	g := openField(t, 30)
	player := model.GridToWorld(3, 3, cell)
	proto := NewRat(0, geom.Vector2{})

	a, _ := SpawnEnemies(g, player, 5, rand.New(rand.NewSource(42)), proto)
	b, _ := SpawnEnemies(g, player, 5, rand.New(rand.NewSource(42)), proto)
	for i := range a {
		if a[i].Position != b[i].Position {
			t.Fatalf("enemy %d differs between runs with the same seed", i)
		}
	}
}

func TestSpawnEnemiesSmallMap(t *testing.T) {
	g := openField(t, 6)
	enemies, err := SpawnEnemies(g, model.GridToWorld(1, 1, cell), 3, rand.New(rand.NewSource(1)), NewRat(0, geom.Vector2{}))
	if err != nil {
		t.Fatalf("SpawnEnemies: %v", err)
	}
	if len(enemies) != 0 {
		t.Fatalf("spawned %d on a map with no room", len(enemies))
	}
}

func TestSpawnSprites(t *testing.T) {
	g := openField(t, 20)
	sprites := SpawnSprites(g, 10, rand.New(rand.NewSource(7)))
	if len(sprites) == 0 {
		t.Fatal("no sprites spawned")
	}

	for i, s := range sprites {
		gx, gy := model.WorldToGrid(s.Position.X, s.Position.Y, cell)
		if !g.WallNear(gx, gy, 2) {
			t.Errorf("sprite %d at (%d,%d) has no wall nearby", i, gx, gy)
		}
		if s.Texture < 0 || s.Texture >= model.DecorationTextures {
			t.Errorf("sprite %d texture %d out of range", i, s.Texture)
		}
		if s.Kind != model.Decoration {
			t.Errorf("sprite %d kind %v", i, s.Kind)
		}
		for _, o := range sprites[:i] {
			if math.Hypot(s.Position.X-o.Position.X, s.Position.Y-o.Position.Y) < 1.5*cell {
				t.Errorf("sprite %d placed too close to another", i)
			}
		}
	}
}

func TestSpawnPickupsCyclesKinds(t *testing.T) {
	g := openField(t, 20)
	kinds := []model.PickupKind{model.PickupHealth, model.PickupAmmo}
	avoid := []geom.Vector2{model.GridToWorld(5, 5, cell)}

	pickups := SpawnPickups(g, kinds, 4, rand.New(rand.NewSource(3)), avoid)
	if len(pickups) != 4 {
		t.Fatalf("spawned %d, want 4", len(pickups))
	}
	for i, p := range pickups {
		if p.Pickup != kinds[i%2] || !p.Collectible() {
			t.Errorf("pickup %d = %v", i, p.Pickup)
		}
		if math.Hypot(p.Position.X-avoid[0].X, p.Position.Y-avoid[0].Y) < 1.5*cell {
			t.Errorf("pickup %d placed on an avoided cell", i)
		}
	}
}
