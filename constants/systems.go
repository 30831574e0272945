package constants

// System priorities, lower runs first within a tick
const (
	PriorityPlayer    = 10
	PriorityAI        = 20
	PriorityAnimation = 30
	PriorityCollision = 40
)
