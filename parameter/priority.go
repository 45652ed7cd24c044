package parameter

// System priorities. Lower runs first. The order is part of the determinism
// contract: intents feed physics, physics feeds combat, combat feeds
// abilities, and destruction is applied last.
const (
	PriorityIntent   = 10
	PriorityBuff     = 20
	PriorityPhysics  = 30
	PriorityCombat   = 40
	PriorityAbility  = 50
	PriorityBurn     = 60
	PriorityAI       = 70
	PriorityWave     = 80
	PriorityShop     = 90
	PriorityLifetime = 100
	PriorityResolve  = 110
	PriorityCull     = 120
)
