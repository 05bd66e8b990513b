package levels

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError describes a malformed descriptor.
// Level and Platform are zero-based, -1 when not applicable.
type ValidationError struct {
	Level    int
	Platform int
	Field    string
	Message  string
}

func (e ValidationError) Error() string {
	switch {
	case e.Level < 0:
		return fmt.Sprintf("pack: %s: %s", e.Field, e.Message)
	case e.Platform < 0:
		return fmt.Sprintf("level %d: %s: %s", e.Level+1, e.Field, e.Message)
	default:
		return fmt.Sprintf("level %d platform %d: %s: %s", e.Level+1, e.Platform+1, e.Field, e.Message)
	}
}

// Validate checks every level of the pack.
func (p Pack) Validate() error {
	if len(p.Levels) == 0 {
		return ValidationError{Level: -1, Platform: -1, Field: "levels", Message: "pack has no levels"}
	}
	var errs []error
	for i, l := range p.Levels {
		if err := l.Validate(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks a single level. index is used for error reporting only.
func (l Level) Validate(index int) error {
	var errs []error
	for j, pl := range l.Platforms {
		if err := pl.validate(index, j); err != nil {
			errs = append(errs, err)
		}
	}
	if !finite(l.Start.X, l.Start.Y) {
		errs = append(errs, ValidationError{
			Level: index, Platform: -1, Field: "start",
			Message: fmt.Sprintf("must be finite, got (%v, %v)", l.Start.X, l.Start.Y),
		})
	}
	g := l.Goal
	if !finite(g.X, g.Y, g.Width, g.Height, g.SpinSpeed) {
		errs = append(errs, ValidationError{
			Level: index, Platform: -1, Field: "goal",
			Message: fmt.Sprintf("values must be finite, got (%v, %v) %vx%v spin %v", g.X, g.Y, g.Width, g.Height, g.SpinSpeed),
		})
	} else if g.Width <= 0 || g.Height <= 0 {
		errs = append(errs, ValidationError{
			Level: index, Platform: -1, Field: "goal",
			Message: fmt.Sprintf("size must be positive, got %vx%v", g.Width, g.Height),
		})
	}
	return errors.Join(errs...)
}

func (pl Platform) validate(level, index int) error {
	fail := func(field, format string, args ...any) error {
		return ValidationError{Level: level, Platform: index, Field: field, Message: fmt.Sprintf(format, args...)}
	}

	if !finite(pl.X, pl.Y) {
		return fail("position", "must be finite, got (%v, %v)", pl.X, pl.Y)
	}
	if !finite(pl.Width, pl.Height) || pl.Width <= 0 || pl.Height <= 0 {
		return fail("size", "must be positive and finite, got %vx%v", pl.Width, pl.Height)
	}
	switch pl.Kind {
	case KindStatic:
	case KindHorizontal, KindVertical:
		if pl.Direction != 1 && pl.Direction != -1 {
			return fail("direction", "must be 1 or -1, got %d", pl.Direction)
		}
		if !finite(pl.Speed) || pl.Speed < 0 {
			return fail("speed", "must be finite and not negative, got %v", pl.Speed)
		}
		if !finite(pl.Travel) || pl.Travel < 0 {
			return fail("travel", "must be finite and not negative, got %v", pl.Travel)
		}
	case KindCrumbling:
		if pl.DecayTicks <= 0 {
			return fail("decay_ticks", "must be positive, got %d", pl.DecayTicks)
		}
	default:
		return fail("kind", "unknown kind %d", int(pl.Kind))
	}
	return nil
}

// finite reports whether every value is neither NaN nor infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
