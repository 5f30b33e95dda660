package model

type EventKind int

const (
	// DamageDealt is damage dealt to the player.
	DamageDealt EventKind = iota
	EnemyKilled
	PickupCollected
	EnemyStartChase
	EnemyAttack
	EnemyHurt
	WeaponFired
)

var eventNames = map[EventKind]string{
	DamageDealt:     "damage",
	EnemyKilled:     "kill",
	PickupCollected: "pickup",
	EnemyStartChase: "chase",
	EnemyAttack:     "attack",
	EnemyHurt:       "hurt",
	WeaponFired:     "fire",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one entry of the per-frame gameplay stream consumed by game state,
// audio and UI.
type Event struct {
	Kind    EventKind
	Amount  int
	EnemyID int
	Pickup  PickupKind
}
