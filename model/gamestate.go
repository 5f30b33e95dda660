package model

import "fmt"

const (
	StartHealth = 100
	StartAmmo   = 200
)

// GameState tracks the player's inventory and progress for one run.
type GameState struct {
	Health    int
	MaxHealth int
	Ammo      int
	Keys      int
	Treasure  int
	Score     int
	Kills     int
}

func NewGameState() *GameState {
	return &GameState{
		Health:    StartHealth,
		MaxHealth: StartHealth,
		Ammo:      StartAmmo,
	}
}

// Collect applies a pickup and returns a short message for the HUD.
func (s *GameState) Collect(kind PickupKind) string {
	switch kind {
	case PickupHealth:
		old := s.Health
		s.Health = min(s.Health+25, s.MaxHealth)
		return fmt.Sprintf("Health +%d", s.Health-old)
	case PickupAmmo:
		s.Ammo += 20
		s.Score += 10
		return "Ammo +20"
	case PickupKey:
		s.Keys++
		s.Score += 50
		return "Key collected!"
	case PickupTreasure:
		s.Treasure++
		s.Score += 100
		return "Treasure +100 points!"
	}
	return ""
}

func (s *GameState) TakeDamage(damage int) {
	s.Health = max(s.Health-damage, 0)
}

func (s *GameState) IsDead() bool {
	return s.Health <= 0
}

func (s *GameState) RecordKill() {
	s.Kills++
	s.Score += 25
}

func (s *GameState) UseAmmo(amount int) {
	s.Ammo = max(s.Ammo-amount, 0)
}

// Apply folds an event stream into the state.
func (s *GameState) Apply(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case DamageDealt:
			s.TakeDamage(e.Amount)
		case EnemyKilled:
			s.RecordKill()
		case PickupCollected:
			s.Collect(e.Pickup)
		}
	}
}

func (s *GameState) String() string {
	return fmt.Sprintf("Health: %d/%d | Ammo: %d | Keys: %d | Treasure: %d | Score: %d",
		s.Health, s.MaxHealth, s.Ammo, s.Keys, s.Treasure, s.Score)
}
