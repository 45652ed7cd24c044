package component

import "github.com/ashenfell/brawlarc/core"

// FactionComponent marks combat alignment.
type FactionComponent struct {
	Faction core.Faction
}
