package models

// FireOverview is the result of one read of a single fireplace's current
// state: its identity plus one Parameter per reported parameter ID
// (spec.md §3.2). Parameters preserves the order the gateway returned
// them in, which carries no meaning — callers index by variant, typically
// with Find.
type FireOverview struct {
	Fire       Fire
	Parameters []Parameter
}

// Find returns the first Parameter in the overview whose ParameterID
// matches id, and whether one was found.
func (o FireOverview) Find(id uint16) (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.ParameterID() == id {
			return p, true
		}
	}
	return nil, false
}

// Mode returns the overview's ModeParam, if present.
func (o FireOverview) Mode() (ModeParam, bool) {
	p, ok := o.Find(ParamIDMode)
	if !ok {
		return ModeParam{}, false
	}
	mp, ok := p.(ModeParam)
	return mp, ok
}

// FlameEffectParam returns the overview's FlameEffectParam, if present.
func (o FireOverview) FlameEffectParam() (FlameEffectParam, bool) {
	p, ok := o.Find(ParamIDFlameEffect)
	if !ok {
		return FlameEffectParam{}, false
	}
	fp, ok := p.(FlameEffectParam)
	return fp, ok
}

// HeatParam returns the overview's HeatParam, if present.
func (o FireOverview) HeatParam() (HeatParam, bool) {
	p, ok := o.Find(ParamIDHeat)
	if !ok {
		return HeatParam{}, false
	}
	hp, ok := p.(HeatParam)
	return hp, ok
}
