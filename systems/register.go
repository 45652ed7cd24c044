package systems

import (
	"github.com/ashenfell/brawlarc/engine"
)

// Register wires the full simulation pipeline into a world, in priority
// order: intent, buffs, physics, combat, abilities, burns, AI, wave
// director, shop, lifetimes, damage resolve, cull.
func Register(world *engine.World) {
	engine.AddResource(world.Resources, NewDamageBatch())

	world.AddSystem(NewIntentSystem(world))
	world.AddSystem(NewBuffSystem(world))
	world.AddSystem(NewPhysicsSystem(world))
	world.AddSystem(NewCombatSystem(world))
	world.AddSystem(NewAbilitySystem(world))
	world.AddSystem(NewBurnSystem(world))
	world.AddSystem(NewAISystem(world))
	world.AddSystem(NewWaveSystem(world))
	world.AddSystem(NewShopSystem(world))
	world.AddSystem(NewLifetimeSystem(world))
	world.AddSystem(NewResolveSystem(world))
	world.AddSystem(NewCullSystem(world))
}
