// Package sim drives a game headlessly from a scripted input sequence at a
// synthetic clock, for reproducing runs and checking lifecycle behavior
// without a terminal.
package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/astro-bounce/internal/core"
)

// Script is an ordered list of input steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step holds some actions for a number of ticks.
// Press actions fire on the first tick of the step only.
type Step struct {
	Ticks int      `yaml:"ticks"`
	Hold  []string `yaml:"hold,omitempty"`
	Press []string `yaml:"press,omitempty"`
}

// Ticks returns the total length of the script.
func (s Script) Ticks() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// DefaultScript starts the game and then idles.
func DefaultScript() Script {
	return Script{Steps: []Step{{Ticks: 1, Press: []string{"bounce"}}}}
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return Script{}, fmt.Errorf("step %d: ticks must be positive, got %d", i+1, st.Ticks)
		}
		for _, name := range append(append([]string{}, st.Hold...), st.Press...) {
			if _, ok := core.ParseAction(name); !ok {
				return Script{}, fmt.Errorf("step %d: unknown action %q", i+1, name)
			}
		}
	}
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return s, nil
}

// frames expands the script into per-tick action sets.
func (s Script) frames() [][]core.Action {
	out := make([][]core.Action, 0, s.Ticks())
	for _, st := range s.Steps {
		hold := actions(st.Hold)
		press := actions(st.Press)
		for i := 0; i < st.Ticks; i++ {
			tick := append([]core.Action{}, hold...)
			if i == 0 {
				tick = append(tick, press...)
			}
			out = append(out, tick)
		}
	}
	return out
}

func actions(names []string) []core.Action {
	out := make([]core.Action, 0, len(names))
	for _, n := range names {
		if a, ok := core.ParseAction(n); ok {
			out = append(out, a)
		}
	}
	return out
}
