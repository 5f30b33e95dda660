// gopher-maze is a raycast maze shooter.
//
// Usage:
//
//	gopher-maze                  - play in a window
//	gopher-maze term             - play in the terminal
//	gopher-maze scores           - show the best runs
//
// Global flags:
//
//	--config <file>     - config file (default: search for gophermaze.yaml)
//	--level <file>      - level file (.yaml, .txt or .png)
//	--seed <value>      - RNG seed for reproducible spawns (0 = time based)
//	--log-level <level> - override log.level
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/trvswgnr/gopher-maze/config"
	"github.com/trvswgnr/gopher-maze/level"
	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/storage"
	"github.com/trvswgnr/gopher-maze/world"
)

var (
	flagConfig   string
	flagLevel    string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	logger.Init()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gopher-maze",
	Short: "Gopher Maze - a raycast maze shooter",
	Long: `Gopher Maze drops you into a maze full of rats. Explore, collect
pickups and clear the level before the rats get you.

Examples:
  gopher-maze
  gopher-maze --level maps/arena.yaml --seed 42
  gopher-maze term
  gopher-maze scores --limit 5`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.Close()
		return runWindow(env)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: search for gophermaze.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level file (.yaml, .txt or .png)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(scoresCmd)
}

// env is everything a frontend needs to run a game.
type env struct {
	cfg   *config.Config
	world *world.World
	store *storage.Store
}

func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.New(flagConfig))
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	return cfg, nil
}

func setup() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.For("main")

	lvl, err := loadLevel(flagLevel, cfg.World.CellSize)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = cfg.World.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("seeding spawns")

	w, err := world.New(cfg, lvl, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, world: w}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		// scores are optional, the game still runs
		log.WithError(err).Warn("high scores disabled")
	} else {
		e.store = store
		w.OnGameOver = func(s *model.GameState) {
			id, err := store.SaveRun(storage.Run{
				Level:    lvl.Name,
				Score:    s.Score,
				Kills:    s.Kills,
				Treasure: s.Treasure,
			})
			if err != nil {
				log.WithError(err).Error("save run")
				return
			}
			log.WithField("id", id).Info("run saved")
		}
	}
	return e, nil
}

func loadLevel(path string, cellSize float64) (*level.Level, error) {
	if path == "" {
		return level.Default(cellSize)
	}
	return level.Load(path, cellSize)
}
