package combat

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"

	"github.com/trvswgnr/gopher-maze/model"
)

const (
	enemyMinPlayerCells = 5.0
	enemySpacingCells   = 3.0
	spriteSpacingCells  = 1.5
	spriteWallRadius    = 2
)

// SpawnEnemies places up to count enemies on open cells away from the border
// and the player, each a deep copy of proto with a fresh ID and position.
func SpawnEnemies(grid *model.Grid, player geom.Vector2, count int, rng *rand.Rand, proto *Enemy) ([]*Enemy, error) {
	cell := grid.CellSize()
	px, py := player.X/cell, player.Y/cell

	var candidates [][2]int
	for _, c := range grid.OpenCells() {
		x, y := c[0], c[1]
		if x < 2 || y < 2 || x >= grid.Width()-2 || y >= grid.Height()-2 {
			continue
		}
		if math.Hypot(float64(x)+0.5-px, float64(y)+0.5-py) <= enemyMinPlayerCells {
			continue
		}
		candidates = append(candidates, c)
	}
	shuffle(rng, candidates)

	var enemies []*Enemy
	var placed []geom.Vector2
	for _, c := range candidates {
		if len(enemies) >= count {
			break
		}
		pos := model.GridToWorld(c[0], c[1], cell)
		if tooClose(placed, pos, enemySpacingCells*cell) {
			continue
		}

		e := &Enemy{}
		if err := copier.CopyWithOption(e, proto, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("clone enemy prototype: %w", err)
		}
		e.ID = len(enemies)
		e.Position = pos
		enemies = append(enemies, e)
		placed = append(placed, pos)
	}
	return enemies, nil
}

// SpawnSprites scatters decorations on open cells that sit near a wall.
func SpawnSprites(grid *model.Grid, count int, rng *rand.Rand) []*model.Sprite {
	cell := grid.CellSize()

	var candidates [][2]int
	for _, c := range grid.OpenCells() {
		x, y := c[0], c[1]
		if x < 1 || y < 1 || x >= grid.Width()-1 || y >= grid.Height()-1 {
			continue
		}
		if grid.WallNear(x, y, spriteWallRadius) {
			candidates = append(candidates, c)
		}
	}
	shuffle(rng, candidates)

	var sprites []*model.Sprite
	var placed []geom.Vector2
	for _, c := range candidates {
		if len(sprites) >= count {
			break
		}
		pos := model.GridToWorld(c[0], c[1], cell)
		if tooClose(placed, pos, spriteSpacingCells*cell) {
			continue
		}
		sprites = append(sprites, model.NewDecoration(pos, rng.Intn(model.DecorationTextures)))
		placed = append(placed, pos)
	}
	return sprites
}

// SpawnPickups places count pickups of the given kinds, cycling through kinds,
// on open cells with the same spacing as decorations. Cells listed in avoid
// are skipped.
func SpawnPickups(grid *model.Grid, kinds []model.PickupKind, count int, rng *rand.Rand, avoid []geom.Vector2) []*model.Sprite {
	if len(kinds) == 0 {
		return nil
	}
	cell := grid.CellSize()

	candidates := grid.OpenCells()
	shuffle(rng, candidates)

	var pickups []*model.Sprite
	placed := append([]geom.Vector2(nil), avoid...)
	for _, c := range candidates {
		if len(pickups) >= count {
			break
		}
		pos := model.GridToWorld(c[0], c[1], cell)
		if tooClose(placed, pos, spriteSpacingCells*cell) {
			continue
		}
		pickups = append(pickups, model.NewPickup(pos, kinds[len(pickups)%len(kinds)]))
		placed = append(placed, pos)
	}
	return pickups
}

// shuffle is a Fisher-Yates shuffle driven by rng so spawns are reproducible
// from a seed.
func shuffle(rng *rand.Rand, cells [][2]int) {
	for i := len(cells) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}

func tooClose(placed []geom.Vector2, pos geom.Vector2, spacing float64) bool {
	for _, p := range placed {
		if math.Hypot(p.X-pos.X, p.Y-pos.Y) < spacing {
			return true
		}
	}
	return false
}
