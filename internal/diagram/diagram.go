// Package diagram renders a component automaton as Graphviz DOT, for
// manual inspection before the BDD encoding runs. Adapted from the
// Kripke-structure DOT writer this program grew out of: same shape
// (invisible start node, quoted state names, edge list), now over one
// automaton's states and transitions instead of a flattened Kripke graph.
package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MichalKnapik/dd-net-checker/internal/model"
)

// DOT returns the Graphviz representation of one component automaton's
// transition graph.
func DOT(c *model.Automaton) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "digraph %s {\n", sanitizeID(c.Name))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n\n")

	sb.WriteString("  __start [shape=point];\n")
	fmt.Fprintf(&sb, "  __start -> %q [label=\"start\"];\n\n", c.Initial())

	for _, s := range c.States {
		fmt.Fprintf(&sb, "  %q;\n", s)
	}
	sb.WriteString("\n")

	for _, t := range c.Transitions {
		fmt.Fprintf(&sb, "  %q -> %q [label=%q];\n", t.From, t.To, t.Action)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// WriteFile renders c and writes it to dir/<automaton-name>.dot.
func WriteFile(dir string, c *model.Automaton) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("diagram: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, c.Name+".dot")
	if err := os.WriteFile(path, []byte(DOT(c)), 0o644); err != nil {
		return "", fmt.Errorf("diagram: write %s: %w", path, err)
	}
	return path, nil
}

func sanitizeID(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r == '-' || r == ' ' || r == '.' {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
