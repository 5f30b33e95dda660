package level

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/harbdog/raycaster-go/geom"
	"gopkg.in/yaml.v3"

	"github.com/trvswgnr/gopher-maze/model"
)

//go:embed levels
var levels embed.FS

// DefaultCellSize is used when neither the level file nor the caller supplies
// a cell size.
const DefaultCellSize = 64.0

func orDefault(cellSize float64) float64 {
	if cellSize <= 0 {
		return DefaultCellSize
	}
	return cellSize
}

var (
	ErrNoSpawn        = errors.New("level has no spawn point")
	ErrUnknownFormat  = errors.New("unknown level format")
	ErrUnknownColor   = errors.New("unknown level colour")
	ErrSpawnNotOpen   = errors.New("spawn is not on an open cell")
	ErrMultipleSpawns = errors.New("level has more than one spawn point")
)

// Level is a maze plus where the player starts in it.
type Level struct {
	Name  string
	Grid  *model.Grid
	Spawn model.Pose
}

type document struct {
	Name     string  `yaml:"name"`
	CellSize float64 `yaml:"cell_size"`
	Spawn    struct {
		X     int     `yaml:"x"`
		Y     int     `yaml:"y"`
		Angle float64 `yaml:"angle"` // degrees
	} `yaml:"spawn"`
	Rows []string `yaml:"rows"`
}

// Default returns the level built into the binary, laid out on cells of the
// given size.
func Default(cellSize float64) (*Level, error) {
	data, err := levels.ReadFile("levels/default.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded level: %w", err)
	}
	return FromYAML(data, cellSize)
}

// Load reads a level file, choosing the decoder by extension. cellSize applies
// to formats without their own; non-positive means DefaultCellSize.
func Load(path string, cellSize float64) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data, cellSize)
	case ".txt", ".map":
		return FromText(name, data, orDefault(cellSize))
	case ".png":
		return FromPNG(name, bytes.NewReader(data), orDefault(cellSize))
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// FromYAML decodes a YAML level. A cell_size in the document wins over
// cellSize.
func FromYAML(data []byte, cellSize float64) (*Level, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if doc.CellSize == 0 {
		doc.CellSize = orDefault(cellSize)
	}

	grid, err := model.NewGrid(doc.Rows, doc.CellSize)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", doc.Name, err)
	}
	return newLevel(doc.Name, grid, doc.Spawn.X, doc.Spawn.Y, doc.Spawn.Angle*math.Pi/180)
}

// FromText parses one row per line. 'P' marks the spawn and '.' is accepted
// as open floor.
func FromText(name string, data []byte, cellSize float64) (*Level, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	sx, sy := -1, -1
	rows := make([]string, 0, len(lines))
	for y, line := range lines {
		row := []byte(line)
		for x, c := range row {
			switch c {
			case 'P':
				if sx >= 0 {
					return nil, fmt.Errorf("level %q: %w", name, ErrMultipleSpawns)
				}
				sx, sy = x, y
				row[x] = byte(model.Open)
			case '.':
				row[x] = byte(model.Open)
			}
		}
		rows = append(rows, string(row))
	}
	if sx < 0 {
		return nil, fmt.Errorf("level %q: %w", name, ErrNoSpawn)
	}

	grid, err := model.NewGrid(rows, cellSize)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return newLevel(name, grid, sx, sy, 0)
}

var (
	colorOpen   = color.RGBA{255, 255, 255, 255}
	colorSpawn  = color.RGBA{0, 255, 0, 255}
	colorExit   = color.RGBA{255, 0, 255, 255}
	colorToWall = map[color.RGBA]model.Cell{
		{0, 0, 0, 255}:     '1',
		{255, 0, 0, 255}:   '2',
		{0, 0, 255, 255}:   '3',
		{255, 255, 0, 255}: '4',
	}
)

// FromPNG decodes a colour map where each pixel is one cell.
func FromPNG(name string, r io.Reader, cellSize float64) (*Level, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image: %w", err)
	}
	return FromImage(name, img, cellSize)
}

func FromImage(name string, img image.Image, cellSize float64) (*Level, error) {
	bounds := img.Bounds()
	sx, sy := -1, -1

	rows := make([]string, bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		row := make([]byte, bounds.Dx())
		for x := 0; x < bounds.Dx(); x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)

			switch c {
			case colorOpen:
				row[x] = byte(model.Open)
			case colorSpawn:
				if sx >= 0 {
					return nil, fmt.Errorf("level %q: %w", name, ErrMultipleSpawns)
				}
				sx, sy = x, y
				row[x] = byte(model.Open)
			case colorExit:
				row[x] = byte(model.Exit)
			default:
				wall, ok := colorToWall[c]
				if !ok {
					return nil, fmt.Errorf("level %q pixel (%d,%d) %v: %w", name, x, y, c, ErrUnknownColor)
				}
				row[x] = byte(wall)
			}
		}
		rows[y] = string(row)
	}
	if sx < 0 {
		return nil, fmt.Errorf("level %q: %w", name, ErrNoSpawn)
	}

	grid, err := model.NewGrid(rows, cellSize)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return newLevel(name, grid, sx, sy, 0)
}

func newLevel(name string, grid *model.Grid, gx, gy int, angle float64) (*Level, error) {
	c, ok := grid.At(gx, gy)
	if !ok || c.IsWall() {
		return nil, fmt.Errorf("level %q spawn (%d,%d): %w", name, gx, gy, ErrSpawnNotOpen)
	}
	return &Level{
		Name:  name,
		Grid:  grid,
		Spawn: model.Pose{Position: model.GridToWorld(gx, gy, grid.CellSize()), Angle: angle},
	}, nil
}

// SpawnPoint is the spawn position in world units.
func (l *Level) SpawnPoint() geom.Vector2 {
	return l.Spawn.Position
}
