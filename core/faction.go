package core

// Faction determines combat alignment. Hit resolution only matches hitboxes
// against hurtboxes of the opposing faction.
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// Opposes reports whether two factions are hostile to each other.
func (f Faction) Opposes(other Faction) bool {
	return f != other
}

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	}
	return "unknown"
}
