package fsm

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
)

// TriggerTick marks transitions evaluated on every Update instead of on an event
const TriggerTick = "Tick"

// Machine is a multi-region finite state machine
// T is the context type passed to actions and guards (e.g., *session.Manager)
// Each region holds exactly one active state; regions never interact except through the context
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes    map[StateID]*Node[T]
	nameToID map[string]StateID

	// Runtime state per region
	regions     map[string]*RegionState
	regionOrder []string

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state
type Node[T any] struct {
	ID     StateID
	Name   string
	Region string

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states of one region
type Transition[T any] struct {
	TargetID StateID
	Event    string       // TriggerTick = evaluated on Update
	Guard    GuardFunc[T] // nil = always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// RegionState tracks the active state of one region
type RegionState struct {
	Name          string
	InitialID     StateID
	ActiveStateID StateID
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)
