package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Name is the base name of the optional config file.
const Name = "gophermaze"

type Config struct {
	Screen  ScreenConfig  `mapstructure:"screen"`
	World   WorldConfig   `mapstructure:"world"`
	Player  PlayerConfig  `mapstructure:"player"`
	Weapon  WeaponConfig  `mapstructure:"weapon"`
	Enemy   EnemyConfig   `mapstructure:"enemy"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type ScreenConfig struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Rays       int     `mapstructure:"rays"`
	FovDegrees float64 `mapstructure:"fov_degrees"`
	Scale      float64 `mapstructure:"scale"`
	Minimap    bool    `mapstructure:"minimap"`
}

type WorldConfig struct {
	CellSize     float64 `mapstructure:"cell_size"`
	VisionRadius float64 `mapstructure:"vision_radius"`
	NearPlane    float64 `mapstructure:"near_plane"`
	DepthEpsilon float64 `mapstructure:"depth_epsilon"`
	Enemies      int     `mapstructure:"enemies"`
	Sprites      int     `mapstructure:"sprites"`
	Pickups      int     `mapstructure:"pickups"`
	Seed         int64   `mapstructure:"seed"`
}

type PlayerConfig struct {
	MoveSpeed        float64 `mapstructure:"move_speed"`
	RotationSpeed    float64 `mapstructure:"rotation_speed"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
}

type WeaponConfig struct {
	Damage    int     `mapstructure:"damage"`
	FireRate  float64 `mapstructure:"fire_rate"`
	Range     float64 `mapstructure:"range"`
	Tolerance float64 `mapstructure:"tolerance"`
}

type EnemyConfig struct {
	Health         int     `mapstructure:"health"`
	DetectionRange float64 `mapstructure:"detection_range"`
	AttackRange    float64 `mapstructure:"attack_range"`
	Speed          float64 `mapstructure:"speed"`
	Damage         int     `mapstructure:"damage"`
	AttackCooldown float64 `mapstructure:"attack_cooldown"`
}

type CombatConfig struct {
	HitPolicy string `mapstructure:"hit_policy"`
}

type AssetsConfig struct {
	TextureDir  string `mapstructure:"texture_dir"`
	TextureSize int    `mapstructure:"texture_size"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key so that env overrides work even without a
// config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 1024)
	v.SetDefault("screen.height", 768)
	v.SetDefault("screen.rays", 256)
	v.SetDefault("screen.fov_degrees", 60.0)
	v.SetDefault("screen.scale", 1.0)
	v.SetDefault("screen.minimap", true)

	v.SetDefault("world.cell_size", 64.0)
	v.SetDefault("world.vision_radius", 200.0)
	v.SetDefault("world.near_plane", 0.5)
	v.SetDefault("world.depth_epsilon", 1.0)
	v.SetDefault("world.enemies", 8)
	v.SetDefault("world.sprites", 15)
	v.SetDefault("world.pickups", 6)
	v.SetDefault("world.seed", 0)

	v.SetDefault("player.move_speed", 7.0)
	v.SetDefault("player.rotation_speed", math.Pi/33)
	v.SetDefault("player.mouse_sensitivity", 0.003)

	v.SetDefault("weapon.damage", 5)
	v.SetDefault("weapon.fire_rate", 0.05)
	v.SetDefault("weapon.range", 20.0)
	v.SetDefault("weapon.tolerance", 0.1)

	v.SetDefault("enemy.health", 20)
	v.SetDefault("enemy.detection_range", 300.0)
	v.SetDefault("enemy.attack_range", 40.0)
	v.SetDefault("enemy.speed", 80.0)
	v.SetDefault("enemy.damage", 10)
	v.SetDefault("enemy.attack_cooldown", 1.0)

	v.SetDefault("combat.hit_policy", "first")

	v.SetDefault("assets.texture_dir", "")
	v.SetDefault("assets.texture_size", 64)

	v.SetDefault("storage.path", defaultStoragePath())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gophermaze.db"
	}
	return filepath.Join(home, ".gopher-maze", "scores.db")
}

// New returns a viper instance with defaults, env binding and search paths set
// up. An explicit file path replaces the search paths.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("GOPHERMAZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}

	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".gopher-maze"))
	}
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	return v
}

// Load reads the config file if one exists and decodes the result. A missing
// file is not an error; a malformed one is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching the file system
// or environment.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	// defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen size %dx%d: %w", c.Screen.Width, c.Screen.Height, ErrInvalid)
	case c.Screen.Rays <= 0:
		return fmt.Errorf("screen.rays %d: %w", c.Screen.Rays, ErrInvalid)
	case c.Screen.FovDegrees <= 0 || c.Screen.FovDegrees >= 180:
		return fmt.Errorf("screen.fov_degrees %v must be in (0, 180): %w", c.Screen.FovDegrees, ErrInvalid)
	case c.World.CellSize <= 0:
		return fmt.Errorf("world.cell_size %v: %w", c.World.CellSize, ErrInvalid)
	case c.Weapon.FireRate < 0 || c.Weapon.Range <= 0 || c.Weapon.Tolerance <= 0:
		return fmt.Errorf("weapon %+v: %w", c.Weapon, ErrInvalid)
	case c.Enemy.Health <= 0:
		return fmt.Errorf("enemy.health %d: %w", c.Enemy.Health, ErrInvalid)
	case c.Enemy.AttackCooldown < 0:
		return fmt.Errorf("enemy.attack_cooldown %v: %w", c.Enemy.AttackCooldown, ErrInvalid)
	case c.Combat.HitPolicy != "first" && c.Combat.HitPolicy != "nearest":
		return fmt.Errorf("combat.hit_policy %q: %w", c.Combat.HitPolicy, ErrInvalid)
	case c.Assets.TextureSize <= 0:
		return fmt.Errorf("assets.texture_size %d: %w", c.Assets.TextureSize, ErrInvalid)
	}
	return nil
}
