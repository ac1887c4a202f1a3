package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseAlphabet reads a sync.modgraph file: one trimmed action label per
// non-empty line, order significant. An empty result is not itself an
// error here — spec.md §7 leaves EmptyAlphabet to the caller, since a
// zero-action network (everything is τ) is a legal, if degenerate, input.
func ParseAlphabet(path string) (Alphabet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: InputMalformed, File: path, Msg: err.Error()}
	}
	defer f.Close()

	var alphabet Alphabet
	seen := make(map[Label]struct{})
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		label := Label(line)
		if _, dup := seen[label]; dup {
			return nil, &Error{Kind: InputMalformed, File: path, Line: lineNo,
				Msg: fmt.Sprintf("duplicate action label %q", label)}
		}
		seen[label] = struct{}{}
		alphabet = append(alphabet, label)
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: InputMalformed, File: path, Msg: err.Error()}
	}
	return alphabet, nil
}

// ParseAutomaton reads one *.modgraph model file: a "states" section
// (first non-empty line declared states, in order) followed by a
// "transitions" section of (source, label, target) triples. The
// automaton's Name is derived from the file's base name without
// extension. Known and τ-rewriting are not applied here — call Resolve
// with the network alphabet once all automata are parsed.
func ParseAutomaton(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: InputMalformed, File: path, Msg: err.Error()}
	}
	defer f.Close()
	return parseAutomaton(f, path, automatonName(path))
}

func automatonName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

const (
	sectionNone = iota
	sectionStates
	sectionTransitions
)

func parseAutomaton(r io.Reader, path, name string) (*Automaton, error) {
	c := &Automaton{Name: name}
	section := sectionNone
	lineNo := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line {
		case "states":
			if section != sectionNone {
				return nil, malformed(path, lineNo, "unexpected second \"states\" section")
			}
			section = sectionStates
			continue
		case "transitions":
			if section != sectionStates {
				return nil, malformed(path, lineNo, "\"transitions\" section without a preceding \"states\" section")
			}
			section = sectionTransitions
			continue
		}

		switch section {
		case sectionNone:
			return nil, malformed(path, lineNo, "expected \"states\" as the first non-empty line")
		case sectionStates:
			c.States = append(c.States, Label(line))
		case sectionTransitions:
			t, err := parseTransition(line)
			if err != nil {
				return nil, malformed(path, lineNo, err.Error())
			}
			c.Transitions = append(c.Transitions, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: InputMalformed, File: path, Msg: err.Error()}
	}
	if len(c.States) == 0 {
		return nil, malformed(path, lineNo, "empty state list")
	}
	return c, nil
}

// parseTransition parses "(source, label, target)".
func parseTransition(line string) (Transition, error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return Transition{}, fmt.Errorf("malformed transition tuple %q: missing parentheses", line)
	}
	inner := line[1 : len(line)-1]
	fields := strings.Split(inner, ",")
	if len(fields) != 3 {
		return Transition{}, fmt.Errorf("malformed transition tuple %q: expected 3 comma-separated fields, got %d", line, len(fields))
	}
	from := strings.TrimSpace(fields[0])
	label := strings.TrimSpace(fields[1])
	to := strings.TrimSpace(fields[2])
	if from == "" || label == "" || to == "" {
		return Transition{}, fmt.Errorf("malformed transition tuple %q: empty field", line)
	}
	return Transition{From: Label(from), Action: Label(label), To: Label(to)}, nil
}

func malformed(path string, line int, msg string) error {
	return &Error{Kind: InputMalformed, File: path, Line: line, Msg: msg}
}

// LoadNetwork parses a sync file and a set of model files, resolves
// every automaton's transitions against the alphabet, and validates the
// cross-automaton invariants (distinct names; with strict, that every
// transition only references declared states).
func LoadNetwork(syncPath string, modelPaths []string, strict bool) (*Network, error) {
	alphabet, err := ParseAlphabet(syncPath)
	if err != nil {
		return nil, err
	}
	if len(modelPaths) == 0 {
		return nil, &Error{Kind: InputMalformed, Msg: "no model files given"}
	}

	automata := make([]*Automaton, 0, len(modelPaths))
	for _, p := range modelPaths {
		c, err := ParseAutomaton(p)
		if err != nil {
			return nil, err
		}
		c.Resolve(alphabet)
		automata = append(automata, c)
	}

	net := &Network{Alphabet: alphabet, Automata: automata}
	if err := net.Validate(strict); err != nil {
		return nil, err
	}
	return net, nil
}
