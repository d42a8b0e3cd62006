package sand

import (
	"strconv"

	"falling-sand/internal/core"
	"falling-sand/internal/material"
)

// Parameters describes the world settings and material constants.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cells.W),
				intParam("h", "Height", w.cells.H),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				boolParam("terrain", "Terrain", params.Terrain),
				floatParam("terrain_base", "Ground level", params.TerrainBase),
				floatParam("terrain_amplitude", "Amplitude", params.TerrainAmplitude),
				floatParam("terrain_scale", "Noise scale", params.TerrainScale),
			},
		},
		materialGroup(),
	}
	return core.ParameterSnapshot{Groups: groups}
}

func materialGroup() core.ParameterGroup {
	group := core.ParameterGroup{Name: "Materials", Summary: "collision loss / friction, dispersion"}
	for _, id := range material.All() {
		props := id.Behavior()
		name := id.String()
		switch props.Kind {
		case material.KindGranular:
			group.Params = append(group.Params,
				floatParam(name+"_collision_loss", name+" collision loss", props.CollisionVelocityLoss),
				floatParam(name+"_friction", name+" friction", props.Friction),
			)
		case material.KindLiquid:
			group.Params = append(group.Params,
				intParam(name+"_dispersion", name+" dispersion", props.DispersionRate),
			)
		}
	}
	return group
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
