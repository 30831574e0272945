package fsm

import (
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadConfig parses a TOML graph and populates the Machine
// Validates all references (regions, states, guards, actions); clears any previous graph
func (m *Machine[T]) LoadConfig(data string) error {
	var config RootConfig
	meta, err := toml.Decode(data, &config)
	if err != nil {
		return errors.Wrap(err, "decode FSM config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown FSM config key %q", undecoded[0].String())
	}
	if len(config.Regions) == 0 {
		return errors.New("FSM config defines no regions")
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.regions = make(map[string]*RegionState)
	m.regionOrder = m.regionOrder[:0]

	// Sort keys for deterministic ID generation
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		cfg := config.States[name]
		if _, ok := config.Regions[cfg.Region]; !ok {
			return errors.Errorf("state %q references unknown region %q", name, cfg.Region)
		}
		id := StateID(i + 1)
		m.nameToID[name] = id
		m.nodes[id] = &Node[T]{ID: id, Name: name, Region: cfg.Region}
	}

	for _, name := range names {
		cfg := config.States[name]
		node := m.nodes[m.nameToID[name]]

		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return errors.Wrapf(err, "state %q on_enter", name)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return errors.Wrapf(err, "state %q on_update", name)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return errors.Wrapf(err, "state %q on_exit", name)
		}

		for _, tc := range cfg.Transitions {
			targetID, ok := m.nameToID[tc.Target]
			if !ok {
				return errors.Errorf("state %q transitions to unknown state %q", name, tc.Target)
			}
			if m.nodes[targetID].Region != node.Region {
				return errors.Errorf("state %q transitions across regions to %q", name, tc.Target)
			}
			if tc.Trigger == "" {
				return errors.Errorf("state %q has transition without trigger", name)
			}
			var guard GuardFunc[T]
			if tc.Guard != "" {
				if guard, ok = m.guardReg[tc.Guard]; !ok {
					return errors.Errorf("state %q references unknown guard %q", name, tc.Guard)
				}
			}
			node.Transitions = append(node.Transitions, Transition[T]{
				TargetID: targetID,
				Event:    tc.Trigger,
				Guard:    guard,
			})
		}
	}

	regionNames := make([]string, 0, len(config.Regions))
	for name := range config.Regions {
		regionNames = append(regionNames, name)
	}
	sort.Strings(regionNames)

	for _, name := range regionNames {
		initialID, ok := m.nameToID[config.Regions[name].Initial]
		if !ok {
			return errors.Errorf("region %q has unknown initial state %q", name, config.Regions[name].Initial)
		}
		if m.nodes[initialID].Region != name {
			return errors.Errorf("region %q initial state %q belongs to region %q", name, config.Regions[name].Initial, m.nodes[initialID].Region)
		}
		m.regions[name] = &RegionState{Name: name, InitialID: initialID}
		m.regionOrder = append(m.regionOrder, name)
	}

	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	if len(configs) == 0 {
		return nil, nil
	}
	actions := make([]Action[T], 0, len(configs))
	for _, ac := range configs {
		fn, ok := m.actionReg[ac.Action]
		if !ok {
			return nil, errors.Errorf("unknown action %q", ac.Action)
		}
		actions = append(actions, Action[T]{Func: fn, Args: ac.Args})
	}
	return actions, nil
}
