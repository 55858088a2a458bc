// Package graph builds a template's stage dependency graph and
// computes which stages are ready to run. Explicit depends_on wins;
// otherwise the DAG is inferred from stage order, where equal order
// forms a parallel group depending on all of the previous group.
package graph

import (
	"fmt"
	"sort"

	"github.com/stewardhq/steward/pkg/models"
)

// Graph is an immutable stage DAG.
type Graph struct {
	defs  map[string]models.StageDef
	deps  map[string][]string
	order []string // deterministic iteration order: (order, name)
}

// State is the mutable execution snapshot ReadySet evaluates against.
type State struct {
	Completed  map[string]bool
	Running    map[string]bool
	Failed     map[string]bool
	Skipped    map[string]bool
	ExecCounts map[string]int
}

// NewState returns an empty state with all maps initialized.
func NewState() State {
	return State{
		Completed:  make(map[string]bool),
		Running:    make(map[string]bool),
		Failed:     make(map[string]bool),
		Skipped:    make(map[string]bool),
		ExecCounts: make(map[string]int),
	}
}

// Build constructs the graph from stage definitions. Reference and
// cycle checks are left to Validate.
func Build(defs []models.StageDef) (*Graph, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("no stages defined")
	}

	g := &Graph{
		defs: make(map[string]models.StageDef, len(defs)),
		deps: make(map[string][]string, len(defs)),
	}

	explicit := false
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("stage with empty name")
		}
		if _, dup := g.defs[def.Name]; dup {
			return nil, fmt.Errorf("duplicate stage name %q", def.Name)
		}
		g.defs[def.Name] = def
		if len(def.DependsOn) > 0 {
			explicit = true
		}
	}

	sorted := make([]models.StageDef, len(defs))
	copy(sorted, defs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].Name < sorted[j].Name
	})
	g.order = make([]string, 0, len(sorted))
	for _, def := range sorted {
		g.order = append(g.order, def.Name)
	}

	if explicit {
		for _, def := range defs {
			g.deps[def.Name] = append([]string(nil), def.DependsOn...)
		}
		return g, nil
	}

	// Order-inferred DAG: each order group depends on every stage of
	// the previous group.
	var prevGroup []string
	var group []string
	for i, def := range sorted {
		if i > 0 && def.Order != sorted[i-1].Order {
			prevGroup = group
			group = nil
		}
		g.deps[def.Name] = append([]string(nil), prevGroup...)
		group = append(group, def.Name)
	}
	return g, nil
}

// Validate reports unknown dependency or redirect references and
// dependency cycles.
func (g *Graph) Validate() error {
	for _, name := range g.order {
		for _, dep := range g.deps[name] {
			if _, ok := g.defs[dep]; !ok {
				return fmt.Errorf("stage %q depends on unknown stage %q", name, dep)
			}
		}
		if target := g.defs[name].OnFailure; target != "" {
			if _, ok := g.defs[target]; !ok {
				return fmt.Errorf("stage %q redirects on failure to unknown stage %q", name, target)
			}
		}
	}

	// Color DFS over depends_on edges. on_failure edges may loop; they
	// are bounded by max_executions at runtime instead.
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(g.order))
	var visit func(string) error
	visit = func(n string) error {
		color[n] = grey
		for _, dep := range g.deps[n] {
			switch color[dep] {
			case grey:
				return fmt.Errorf("dependency cycle through stage %q", dep)
			case white:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		color[n] = black
		return nil
	}
	for _, n := range g.order {
		if color[n] == white {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate builds and validates in one step, for template registration.
func Validate(defs []models.StageDef) error {
	g, err := Build(defs)
	if err != nil {
		return err
	}
	return g.Validate()
}

// ReadySet returns the stages whose dependencies are all completed or
// skipped, that are not themselves running, completed or skipped, and
// that are either unfailed or failed with execution budget remaining.
// The result order is deterministic: (order, name) ascending.
func (g *Graph) ReadySet(st State) []string {
	var ready []string
	for _, name := range g.order {
		if st.Completed[name] || st.Skipped[name] || st.Running[name] {
			continue
		}
		if st.Failed[name] && st.ExecCounts[name] >= g.MaxExecutions(name) {
			continue
		}
		ok := true
		for _, dep := range g.deps[name] {
			if !st.Completed[dep] && !st.Skipped[dep] {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, name)
		}
	}
	return ready
}

// FailureRedirect returns the on_failure target of a stage, if any.
func (g *Graph) FailureRedirect(name string) (string, bool) {
	def, ok := g.defs[name]
	if !ok || def.OnFailure == "" {
		return "", false
	}
	return def.OnFailure, true
}

// MaxExecutions returns the stage's execution budget with the default
// applied. Unknown stages get the default.
func (g *Graph) MaxExecutions(name string) int {
	def, ok := g.defs[name]
	if !ok {
		return models.DefaultMaxExecutions
	}
	return def.EffectiveMaxExecutions()
}

// Nodes returns all stage names in deterministic order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// Deps returns a stage's direct dependencies.
func (g *Graph) Deps(name string) []string {
	return append([]string(nil), g.deps[name]...)
}

// Def returns the stage definition for a node.
func (g *Graph) Def(name string) (models.StageDef, bool) {
	def, ok := g.defs[name]
	return def, ok
}
