package models

// Parameter is the tagged sum of every fireplace state/command record
// FlameConnect's gateway exchanges. Each concrete variant below is an
// immutable value; mutation is always expressed by calling one of a
// variant's With* methods, which return a new value with one field
// overridden and leave the receiver untouched (spec.md §3.3, §9).
//
// Unknown enum bytes received from the gateway are never a decode
// failure: every enum field in these structs is a plain integer-backed
// type (models.FireMode, models.HeatMode, ...) whose underlying byte IS
// its wire representation, so an out-of-range byte round-trips losslessly
// as an otherwise-valid value of that type (its String() method falls
// back to printing the raw integer). Brightness and PulsatingEffect are
// the exception: each occupies one bit of a shared wire byte, so only
// their 0/1 values are carried. That is this module's uniform
// answer to the "Unknown values vs decode failures" design note in
// spec.md §9: no information is ever dropped, and no exhaustive switch
// anywhere needs an extra Unknown case to compile.
type Parameter interface {
	// ParameterID returns the wire parameter ID this value encodes as.
	ParameterID() uint16
	isParameter()
}

// Parameter ID constants, mirrored in pkg/constants for callers that only
// need the ID space without pulling in the full type definitions.
const (
	ParamIDTempUnit       uint16 = 236
	ParamIDMode           uint16 = 321
	ParamIDFlameEffect    uint16 = 322
	ParamIDHeat           uint16 = 323
	ParamIDHeatMode       uint16 = 325
	ParamIDTimer          uint16 = 326
	ParamIDSoftwareVersion uint16 = 327
	ParamIDError          uint16 = 329
	ParamIDSound          uint16 = 369
	ParamIDLogEffect      uint16 = 370
)

// TempUnitParam (236) is the display temperature unit.
type TempUnitParam struct {
	Unit TempUnit
}

func (TempUnitParam) isParameter()        {}
func (TempUnitParam) ParameterID() uint16 { return ParamIDTempUnit }

// WithUnit returns a copy with Unit replaced.
func (p TempUnitParam) WithUnit(unit TempUnit) TempUnitParam {
	p.Unit = unit
	return p
}

// ModeParam (321) is the top-level operating mode plus the temperature
// the gateway associates with that mode context (spec.md §9 leaves
// whether this is ambient or setpoint temperature to the caller).
type ModeParam struct {
	Mode       FireMode
	TargetTemp float64
}

func (ModeParam) isParameter()        {}
func (ModeParam) ParameterID() uint16 { return ParamIDMode }

func (p ModeParam) WithMode(mode FireMode) ModeParam {
	p.Mode = mode
	return p
}

func (p ModeParam) WithTargetTemp(temp float64) ModeParam {
	p.TargetTemp = temp
	return p
}

// FlameEffectParam (322) packs twelve logical fields into a 20-byte wire
// payload. Brightness and PulsatingEffect share a single wire byte
// (spec.md §3.3); every With* method here returns a copy of the receiver
// with one field changed, and pkg/codec packs that byte from both fields
// on encode, so a single-field mutation of a value that was read first
// keeps its co-tenant, which is the read-modify-write discipline
// pkg/client's TurnOn/TurnOff demonstrate at the request layer.
type FlameEffectParam struct {
	FlameEffect     FlameEffect
	FlameSpeed      int // 1..5, externally 1-based (spec.md §3.3)
	Brightness      Brightness
	PulsatingEffect PulsatingEffect
	MediaTheme      MediaTheme
	MediaLight      LightStatus
	MediaColor      RGBWColor
	OverheadLight   LightStatus
	OverheadColor   RGBWColor
	LightStatus     LightStatus
	FlameColor      FlameColor
	AmbientSensor   LightStatus
}

func (FlameEffectParam) isParameter()        {}
func (FlameEffectParam) ParameterID() uint16 { return ParamIDFlameEffect }

func (p FlameEffectParam) WithFlameEffect(effect FlameEffect) FlameEffectParam {
	p.FlameEffect = effect
	return p
}

func (p FlameEffectParam) WithFlameSpeed(speed int) FlameEffectParam {
	p.FlameSpeed = speed
	return p
}

func (p FlameEffectParam) WithBrightness(b Brightness) FlameEffectParam {
	p.Brightness = b
	return p
}

func (p FlameEffectParam) WithPulsatingEffect(e PulsatingEffect) FlameEffectParam {
	p.PulsatingEffect = e
	return p
}

func (p FlameEffectParam) WithMediaTheme(t MediaTheme) FlameEffectParam {
	p.MediaTheme = t
	return p
}

func (p FlameEffectParam) WithMediaLight(l LightStatus) FlameEffectParam {
	p.MediaLight = l
	return p
}

func (p FlameEffectParam) WithMediaColor(c RGBWColor) FlameEffectParam {
	p.MediaColor = c
	return p
}

func (p FlameEffectParam) WithOverheadLight(l LightStatus) FlameEffectParam {
	p.OverheadLight = l
	return p
}

func (p FlameEffectParam) WithOverheadColor(c RGBWColor) FlameEffectParam {
	p.OverheadColor = c
	return p
}

func (p FlameEffectParam) WithLightStatus(l LightStatus) FlameEffectParam {
	p.LightStatus = l
	return p
}

func (p FlameEffectParam) WithFlameColor(c FlameColor) FlameEffectParam {
	p.FlameColor = c
	return p
}

func (p FlameEffectParam) WithAmbientSensor(l LightStatus) FlameEffectParam {
	p.AmbientSensor = l
	return p
}

// HeatParam (323) is the heater's current status and the command fields
// a write changes it with. BoostDuration is externally 1-based minutes
// (spec.md §3.3); the gateway has been observed to return payloads longer
// than the canonical 5 bytes, which pkg/codec tolerates on decode and
// never reproduces on encode (spec.md §9).
type HeatParam struct {
	HeatStatus          HeatStatus
	HeatMode            HeatMode
	SetpointTemperature float64
	BoostDuration       int // 1..20 minutes
}

func (HeatParam) isParameter()        {}
func (HeatParam) ParameterID() uint16 { return ParamIDHeat }

func (p HeatParam) WithHeatStatus(s HeatStatus) HeatParam {
	p.HeatStatus = s
	return p
}

func (p HeatParam) WithHeatMode(m HeatMode) HeatParam {
	p.HeatMode = m
	return p
}

func (p HeatParam) WithSetpointTemperature(t float64) HeatParam {
	p.SetpointTemperature = t
	return p
}

func (p HeatParam) WithBoostDuration(minutes int) HeatParam {
	p.BoostDuration = minutes
	return p
}

// HeatModeParam (325) is the hardware/software heater enablement state.
type HeatModeParam struct {
	HeatControl HeatControl
}

func (HeatModeParam) isParameter()        {}
func (HeatModeParam) ParameterID() uint16 { return ParamIDHeatMode }

func (p HeatModeParam) WithHeatControl(c HeatControl) HeatModeParam {
	p.HeatControl = c
	return p
}

// TimerParam (326) is the auto-off timer state.
type TimerParam struct {
	TimerStatus     TimerStatus
	DurationMinutes int
}

func (TimerParam) isParameter()        {}
func (TimerParam) ParameterID() uint16 { return ParamIDTimer }

func (p TimerParam) WithTimerStatus(s TimerStatus) TimerParam {
	p.TimerStatus = s
	return p
}

func (p TimerParam) WithDurationMinutes(minutes int) TimerParam {
	p.DurationMinutes = minutes
	return p
}

// VersionTriple is a major.minor.test firmware version.
type VersionTriple struct {
	Major uint8
	Minor uint8
	Test  uint8
}

// SoftwareVersionParam (327) is read-only: the gateway never accepts a
// write of this parameter, so it has no encoder and no With* methods.
type SoftwareVersionParam struct {
	UI      VersionTriple
	Control VersionTriple
	Relay   VersionTriple
}

func (SoftwareVersionParam) isParameter()        {}
func (SoftwareVersionParam) ParameterID() uint16 { return ParamIDSoftwareVersion }

// ErrorParam (329) is read-only: a 32-bit fault bitmap (spec.md §6.4).
type ErrorParam struct {
	Faults FaultBitmap
}

func (ErrorParam) isParameter()        {}
func (ErrorParam) ParameterID() uint16 { return ParamIDError }

// SoundParam (369) is the alert/ember-crackle sound configuration.
type SoundParam struct {
	Volume    int // 0..255
	SoundFile int // 0..255
}

func (SoundParam) isParameter()        {}
func (SoundParam) ParameterID() uint16 { return ParamIDSound }

func (p SoundParam) WithVolume(v int) SoundParam {
	p.Volume = v
	return p
}

func (p SoundParam) WithSoundFile(f int) SoundParam {
	p.SoundFile = f
	return p
}

// LogEffectParam (370) is the ember-log lighting effect. LogEffect shares
// FlameEffect's on/off wire shape; the spec names no distinct enum for it.
type LogEffectParam struct {
	LogEffect  FlameEffect
	MediaTheme MediaTheme
	Color      RGBWColor
	Pattern    int // 0..255
}

func (LogEffectParam) isParameter()        {}
func (LogEffectParam) ParameterID() uint16 { return ParamIDLogEffect }

func (p LogEffectParam) WithLogEffect(e FlameEffect) LogEffectParam {
	p.LogEffect = e
	return p
}

func (p LogEffectParam) WithMediaTheme(t MediaTheme) LogEffectParam {
	p.MediaTheme = t
	return p
}

func (p LogEffectParam) WithColor(c RGBWColor) LogEffectParam {
	p.Color = c
	return p
}

func (p LogEffectParam) WithPattern(pattern int) LogEffectParam {
	p.Pattern = pattern
	return p
}
