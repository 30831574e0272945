package fsm

import (
	"github.com/pkg/errors"
)

// NewMachine creates an empty FSM; register guards and actions before LoadConfig
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		regions:   make(map[string]*RegionState),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state of every region in name order
func (m *Machine[T]) Init(ctx T) error {
	if len(m.regionOrder) == 0 {
		return errors.New("FSM has no defined regions to initialize")
	}
	for _, name := range m.regionOrder {
		region := m.regions[name]
		region.ActiveStateID = region.InitialID
		runActions(ctx, m.nodes[region.InitialID].OnEnter)
	}
	return nil
}

// Update runs OnUpdate actions then tick transitions in every active region
func (m *Machine[T]) Update(ctx T) {
	for _, name := range m.regionOrder {
		region := m.regions[name]
		if region.ActiveStateID == StateNone {
			continue
		}
		node := m.nodes[region.ActiveStateID]
		runActions(ctx, node.OnUpdate)

		// OnUpdate may already have moved the region
		if region.ActiveStateID != node.ID {
			continue
		}
		m.fire(ctx, region, node, TriggerTick)
	}
}

// HandleEvent routes an event through all regions
// Returns true if any region transitioned
func (m *Machine[T]) HandleEvent(ctx T, event string) bool {
	handled := false
	for _, name := range m.regionOrder {
		region := m.regions[name]
		if region.ActiveStateID == StateNone {
			continue
		}
		if m.fire(ctx, region, m.nodes[region.ActiveStateID], event) {
			handled = true
		}
	}
	return handled
}

func (m *Machine[T]) fire(ctx T, region *RegionState, node *Node[T], event string) bool {
	for _, trans := range node.Transitions {
		if trans.Event != event {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, region, trans.TargetID)
		return true
	}
	return false
}

// transition performs exit/enter; a self-transition re-runs both
func (m *Machine[T]) transition(ctx T, region *RegionState, targetID StateID) {
	runActions(ctx, m.nodes[region.ActiveStateID].OnExit)
	region.ActiveStateID = targetID
	runActions(ctx, m.nodes[targetID].OnEnter)
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Current returns the active state name of a region, empty if unknown
func (m *Machine[T]) Current(region string) string {
	r, ok := m.regions[region]
	if !ok || r.ActiveStateID == StateNone {
		return ""
	}
	return m.nodes[r.ActiveStateID].Name
}

// In reports whether the region's active state is name
func (m *Machine[T]) In(region, name string) bool {
	return m.Current(region) == name
}
