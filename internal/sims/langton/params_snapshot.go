package langton

import (
	"fmt"
	"strconv"

	"langton-ant/internal/core"
	"langton-ant/internal/highway"
)

// Parameters publishes the live counters for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	x, y := s.ant.Position()
	size := s.ant.Size()
	state, dir := s.Highway()
	status := "Searching..."
	if state == highway.Confirmed {
		status = string(dir)
	}
	groups := []core.ParameterGroup{
		{
			Name: "Agent",
			Params: []core.Parameter{
				intParam("steps", "Step", s.ant.Steps()),
				stringParam("position", "Position", fmt.Sprintf("(%d, %d)", x, y)),
				stringParam("heading", "Direction", s.ant.Heading().String()),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				stringParam("grid", "Grid", fmt.Sprintf("%dx%d", size.W, size.H)),
				intParam("expansions", "Expansions", s.ant.Expansions()),
				intParam("margin", "Margin", s.ant.Margin()),
			},
		},
		{
			Name: "Highway",
			Params: []core.Parameter{
				stringParam("highway", "Highway", status),
				intParam("history", "History", s.detector.Len()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
