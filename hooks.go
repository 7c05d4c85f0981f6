package timeline

import "fmt"

// Hook identifies a lifecycle point at which plugin callbacks run.
type Hook uint8

const (
	// HookConstruct runs once, after the chart is fully initialized.
	HookConstruct Hook = iota

	// HookComputeBefore runs before each projection pass.
	HookComputeBefore

	// HookComputeAfter runs after each projection pass has been published.
	HookComputeAfter

	// HookDrawBefore runs before the surface is repainted.
	HookDrawBefore

	// HookDrawAfter runs after the data line has been stroked.
	HookDrawAfter

	// HookPause runs when the chart is paused.
	HookPause

	// HookResume runs after the chart is resumed and recomputed.
	HookResume

	hookCount
)

var hookNames = [hookCount]string{
	HookConstruct:     "construct",
	HookComputeBefore: "compute:before",
	HookComputeAfter:  "compute:after",
	HookDrawBefore:    "draw:before",
	HookDrawAfter:     "draw:after",
	HookPause:         "pause",
	HookResume:        "resume",
}

// String returns the lifecycle name of the hook, e.g. "compute:before".
func (h Hook) String() string {
	if h < hookCount {
		return hookNames[h]
	}
	return fmt.Sprintf("Hook(%d)", uint8(h))
}

// ParseHook returns the hook with the given lifecycle name.
func ParseHook(name string) (Hook, error) {
	for h, n := range hookNames {
		if n == name {
			return Hook(h), nil
		}
	}
	return 0, fmt.Errorf("timeline: unknown hook %q", name)
}

// HookFunc is a plugin callback. state is the private value created by the
// plugin's NewState at registration; the chart never inspects it.
//
// Returning an error aborts the remaining callbacks for that hook and
// propagates out of the chart operation that triggered it.
type HookFunc func(c *Chart, state any) error

// Plugin is a bundle of optional lifecycle callbacks.
//
// Plugins are built by a factory before the chart is constructed and are
// registered once, in order, by New.
type Plugin struct {
	// Name identifies the plugin in errors and logs.
	Name string

	// Hooks maps lifecycle points to callbacks. Missing entries are skipped.
	Hooks map[Hook]HookFunc

	// NewState creates the plugin's private state at registration.
	// If nil, callbacks receive a nil state.
	NewState func() any
}

// registration is one callback bound to its plugin's state.
type registration struct {
	plugin string
	fn     HookFunc
	state  any
}

// dispatcher holds, for every hook, the callbacks in registration order.
type dispatcher struct {
	hooks [hookCount][]registration
}

// register creates the plugin's state and appends its callbacks.
func (d *dispatcher) register(p *Plugin) {
	var state any
	if p.NewState != nil {
		state = p.NewState()
	}
	for h := range hookCount {
		fn := p.Hooks[h]
		if fn == nil {
			continue
		}
		d.hooks[h] = append(d.hooks[h], registration{plugin: p.Name, fn: fn, state: state})
	}
}

// dispatch runs every callback registered for h. The first failure stops
// the loop and is returned as a *HookError.
func (d *dispatcher) dispatch(h Hook, c *Chart) error {
	for _, r := range d.hooks[h] {
		if err := r.fn(c, r.state); err != nil {
			return &HookError{Hook: h, Plugin: r.plugin, Err: err}
		}
	}
	return nil
}

// count returns the number of callbacks registered for h.
func (d *dispatcher) count(h Hook) int {
	return len(d.hooks[h])
}
