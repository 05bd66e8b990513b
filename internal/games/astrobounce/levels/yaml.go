package levels

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlPack is the on-disk structure of a pack file.
type yamlPack struct {
	Name   string      `yaml:"name"`
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Name      string         `yaml:"name"`
	Start     *yamlPoint     `yaml:"start"`
	Platforms []yamlPlatform `yaml:"platforms"`
	Goal      *yamlGoal      `yaml:"goal"`
}

type yamlPoint struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// Pointer fields distinguish a missing key from an explicit zero.
type yamlPlatform struct {
	X          *float64 `yaml:"x"`
	Y          *float64 `yaml:"y"`
	Width      *float64 `yaml:"width"`
	Height     *float64 `yaml:"height"`
	Kind       string   `yaml:"kind,omitempty"`
	Color      string   `yaml:"color,omitempty"`
	Speed      float64  `yaml:"speed,omitempty"`
	Direction  *int     `yaml:"direction,omitempty"`
	Travel     float64  `yaml:"travel,omitempty"`
	DecayTicks int      `yaml:"decay_ticks,omitempty"`
}

type yamlGoal struct {
	X         *float64 `yaml:"x"`
	Y         *float64 `yaml:"y"`
	Width     *float64 `yaml:"width"`
	Height    *float64 `yaml:"height"`
	SpinSpeed *float64 `yaml:"spin_speed,omitempty"`
	Color     string   `yaml:"color,omitempty"`
}

// DefaultSpinSpeed is the goal spin used when a descriptor omits it.
const DefaultSpinSpeed = 0.05

// Parse decodes and validates a YAML pack.
func Parse(data []byte) (Pack, error) {
	var yp yamlPack
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{Name: yp.Name, Levels: make([]Level, 0, len(yp.Levels))}
	for i, yl := range yp.Levels {
		level, err := yl.toLevel(i)
		if err != nil {
			return Pack{}, err
		}
		pack.Levels = append(pack.Levels, level)
	}

	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack, nil
}

func (yl yamlLevel) toLevel(index int) (Level, error) {
	missing := func(platform int, field string) error {
		return ValidationError{Level: index, Platform: platform, Field: field, Message: "required"}
	}

	name := yl.Name
	if name == "" {
		name = fmt.Sprintf("Level %d", index+1)
	}
	level := Level{Name: name, Platforms: make([]Platform, 0, len(yl.Platforms))}

	if yl.Start == nil || yl.Start.X == nil || yl.Start.Y == nil {
		return Level{}, missing(-1, "start")
	}
	level.Start = Point{X: *yl.Start.X, Y: *yl.Start.Y}

	for j, yp := range yl.Platforms {
		switch {
		case yp.X == nil:
			return Level{}, missing(j, "x")
		case yp.Y == nil:
			return Level{}, missing(j, "y")
		case yp.Width == nil:
			return Level{}, missing(j, "width")
		case yp.Height == nil:
			return Level{}, missing(j, "height")
		}

		kind := KindStatic
		if yp.Kind != "" {
			k, ok := ParseKind(yp.Kind)
			if !ok {
				return Level{}, ValidationError{Level: index, Platform: j, Field: "kind", Message: fmt.Sprintf("unknown kind %q", yp.Kind)}
			}
			kind = k
		}

		direction := 1
		if yp.Direction != nil {
			direction = *yp.Direction
		}
		color := yp.Color
		if color == "" {
			color = kind.DefaultColor()
		}

		level.Platforms = append(level.Platforms, Platform{
			X:          *yp.X,
			Y:          *yp.Y,
			Width:      *yp.Width,
			Height:     *yp.Height,
			Kind:       kind,
			Color:      color,
			Speed:      yp.Speed,
			Direction:  direction,
			Travel:     yp.Travel,
			DecayTicks: yp.DecayTicks,
		})
	}

	g := yl.Goal
	if g == nil {
		return Level{}, missing(-1, "goal")
	}
	if g.X == nil || g.Y == nil || g.Width == nil || g.Height == nil {
		return Level{}, ValidationError{Level: index, Platform: -1, Field: "goal", Message: "x, y, width and height are required"}
	}
	spin := DefaultSpinSpeed
	if g.SpinSpeed != nil {
		spin = *g.SpinSpeed
	}
	color := g.Color
	if color == "" {
		color = ColorGoal
	}
	level.Goal = Goal{X: *g.X, Y: *g.Y, Width: *g.Width, Height: *g.Height, SpinSpeed: spin, Color: color}

	return level, nil
}
