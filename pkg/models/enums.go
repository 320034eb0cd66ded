// Package models holds the algebraic types FlameConnect decodes fireplace
// state into and encodes commands from. Nothing in this package performs
// I/O; it is referenced by pkg/codec and pkg/client.
package models

import "fmt"

// FireMode is the top-level operating mode of a fireplace (parameter 321).
type FireMode uint8

const (
	FireModeStandby FireMode = 0
	FireModeManual  FireMode = 1
)

func (m FireMode) String() string {
	switch m {
	case FireModeStandby:
		return "Standby"
	case FireModeManual:
		return "Manual"
	default:
		return fmt.Sprintf("FireMode(%d)", uint8(m))
	}
}

// FlameEffect is the on/off state of the visual flame effect.
type FlameEffect uint8

const (
	FlameEffectOff FlameEffect = 0
	FlameEffectOn  FlameEffect = 1
)

func (f FlameEffect) String() string {
	switch f {
	case FlameEffectOff:
		return "Off"
	case FlameEffectOn:
		return "On"
	default:
		return fmt.Sprintf("FlameEffect(%d)", uint8(f))
	}
}

// HeatStatus is whether the heater element is currently running.
type HeatStatus uint8

const (
	HeatStatusOff HeatStatus = 0
	HeatStatusOn  HeatStatus = 1
)

func (h HeatStatus) String() string {
	switch h {
	case HeatStatusOff:
		return "Off"
	case HeatStatusOn:
		return "On"
	default:
		return fmt.Sprintf("HeatStatus(%d)", uint8(h))
	}
}

// HeatMode selects the heating strategy. FanOnly and Schedule exist on the
// wire but are not part of the user-facing surface (spec.md §1).
type HeatMode uint8

const (
	HeatModeNormal   HeatMode = 0
	HeatModeBoost    HeatMode = 1
	HeatModeEco      HeatMode = 2
	HeatModeFanOnly  HeatMode = 3
	HeatModeSchedule HeatMode = 4
)

func (h HeatMode) String() string {
	switch h {
	case HeatModeNormal:
		return "Normal"
	case HeatModeBoost:
		return "Boost"
	case HeatModeEco:
		return "Eco"
	case HeatModeFanOnly:
		return "FanOnly"
	case HeatModeSchedule:
		return "Schedule"
	default:
		return fmt.Sprintf("HeatMode(%d)", uint8(h))
	}
}

// HeatControl is the hardware/software enablement state of the heater.
type HeatControl uint8

const (
	HeatControlSoftwareDisabled HeatControl = 0
	HeatControlHardwareDisabled HeatControl = 1
	HeatControlEnabled          HeatControl = 2
)

func (h HeatControl) String() string {
	switch h {
	case HeatControlSoftwareDisabled:
		return "SoftwareDisabled"
	case HeatControlHardwareDisabled:
		return "HardwareDisabled"
	case HeatControlEnabled:
		return "Enabled"
	default:
		return fmt.Sprintf("HeatControl(%d)", uint8(h))
	}
}

// FlameColor selects a fixed flame color preset.
type FlameColor uint8

const (
	FlameColorAll       FlameColor = 0
	FlameColorYellowRed FlameColor = 1
	FlameColorYellowBlue FlameColor = 2
	FlameColorBlue      FlameColor = 3
	FlameColorRed       FlameColor = 4
	FlameColorYellow    FlameColor = 5
	FlameColorBlueRed   FlameColor = 6
)

func (c FlameColor) String() string {
	switch c {
	case FlameColorAll:
		return "All"
	case FlameColorYellowRed:
		return "YellowRed"
	case FlameColorYellowBlue:
		return "YellowBlue"
	case FlameColorBlue:
		return "Blue"
	case FlameColorRed:
		return "Red"
	case FlameColorYellow:
		return "Yellow"
	case FlameColorBlueRed:
		return "BlueRed"
	default:
		return fmt.Sprintf("FlameColor(%d)", uint8(c))
	}
}

// Brightness is the flame brightness level. Only High and Low have named
// constants. pkg/codec carries brightness in a single bit of the packed
// FlameEffectParam byte, so decoding yields only High or Low, and any
// value other than High encodes as Low; other values print through
// String()'s numeric fallback.
type Brightness uint8

const (
	BrightnessHigh Brightness = 0
	BrightnessLow  Brightness = 1
)

func (b Brightness) String() string {
	switch b {
	case BrightnessHigh:
		return "High"
	case BrightnessLow:
		return "Low"
	default:
		return fmt.Sprintf("Brightness(%d)", uint8(b))
	}
}

// PulsatingEffect is whether the flame brightness pulsates.
type PulsatingEffect uint8

const (
	PulsatingEffectOff PulsatingEffect = 0
	PulsatingEffectOn  PulsatingEffect = 1
)

func (p PulsatingEffect) String() string {
	switch p {
	case PulsatingEffectOff:
		return "Off"
	case PulsatingEffectOn:
		return "On"
	default:
		return fmt.Sprintf("PulsatingEffect(%d)", uint8(p))
	}
}

// MediaTheme selects a preset ambient-light color theme. Indices 1..8 are
// named externally as White, Blue, Purple, Red, Green, Prism, Kaleidoscope
// and Midnight; 0 means the user has picked a custom color instead of a
// theme.
type MediaTheme uint8

const (
	MediaThemeUserDefined   MediaTheme = 0
	MediaThemeWhite         MediaTheme = 1
	MediaThemeBlue          MediaTheme = 2
	MediaThemePurple        MediaTheme = 3
	MediaThemeRed           MediaTheme = 4
	MediaThemeGreen         MediaTheme = 5
	MediaThemePrism         MediaTheme = 6
	MediaThemeKaleidoscope  MediaTheme = 7
	MediaThemeMidnight      MediaTheme = 8
)

func (m MediaTheme) String() string {
	switch m {
	case MediaThemeUserDefined:
		return "UserDefined"
	case MediaThemeWhite:
		return "White"
	case MediaThemeBlue:
		return "Blue"
	case MediaThemePurple:
		return "Purple"
	case MediaThemeRed:
		return "Red"
	case MediaThemeGreen:
		return "Green"
	case MediaThemePrism:
		return "Prism"
	case MediaThemeKaleidoscope:
		return "Kaleidoscope"
	case MediaThemeMidnight:
		return "Midnight"
	default:
		return fmt.Sprintf("MediaTheme(%d)", uint8(m))
	}
}

// LightStatus is a simple on/off flag shared by several light parameters.
type LightStatus uint8

const (
	LightStatusOff LightStatus = 0
	LightStatusOn  LightStatus = 1
)

func (l LightStatus) String() string {
	switch l {
	case LightStatusOff:
		return "Off"
	case LightStatusOn:
		return "On"
	default:
		return fmt.Sprintf("LightStatus(%d)", uint8(l))
	}
}

// TimerStatus is whether the auto-off timer is armed.
type TimerStatus uint8

const (
	TimerStatusDisabled TimerStatus = 0
	TimerStatusEnabled  TimerStatus = 1
)

func (t TimerStatus) String() string {
	switch t {
	case TimerStatusDisabled:
		return "Disabled"
	case TimerStatusEnabled:
		return "Enabled"
	default:
		return fmt.Sprintf("TimerStatus(%d)", uint8(t))
	}
}

// TempUnit is the display unit for temperatures (parameter 236).
type TempUnit uint8

const (
	TempUnitFahrenheit TempUnit = 0
	TempUnitCelsius    TempUnit = 1
)

func (t TempUnit) String() string {
	switch t {
	case TempUnitFahrenheit:
		return "Fahrenheit"
	case TempUnitCelsius:
		return "Celsius"
	default:
		return fmt.Sprintf("TempUnit(%d)", uint8(t))
	}
}

// ConnectionState is the gateway's view of the fireplace's IoT connectivity.
type ConnectionState uint8

const (
	ConnectionStateUnknown          ConnectionState = 0
	ConnectionStateNotConnected     ConnectionState = 1
	ConnectionStateConnected        ConnectionState = 2
	ConnectionStateUpdatingFirmware ConnectionState = 3
)

func (c ConnectionState) String() string {
	switch c {
	case ConnectionStateUnknown:
		return "Unknown"
	case ConnectionStateNotConnected:
		return "NotConnected"
	case ConnectionStateConnected:
		return "Connected"
	case ConnectionStateUpdatingFirmware:
		return "UpdatingFirmware"
	default:
		return fmt.Sprintf("ConnectionState(%d)", uint8(c))
	}
}
