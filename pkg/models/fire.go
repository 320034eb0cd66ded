package models

// FireFeatures is the optional capability record the gateway attaches to
// a Fire listing. Its absence (spec.md §3.2) is equivalent to every flag
// being false, which is also the Go zero value, so decoders can simply
// leave this unset rather than special-casing "missing."
type FireFeatures struct {
	Sound                bool
	SimpleHeat           bool
	AdvancedHeat         bool
	RgbFlameAccent       bool
	RgbMediaLight        bool
	RgbOverheadLight     bool
	FlameEffect          bool
	FlameSpeed           bool
	FlameColorPresets    bool
	PulsatingEffect      bool
	MediaTheme           bool
	OverheadLight        bool
	AmbientLightSensor   bool
	Timer                bool
	BoostMode            bool
	EcoMode              bool
	FanOnlyMode          bool
	Schedule             bool
	LogEffect            bool
	LogEffectPattern     bool
	SoftwareVersionQuery bool
	ErrorReporting       bool
	MultiZoneHeat        bool
	FirmwareUpdate       bool
}

// Fire is a fireplace's identity as returned by the gateway's fire-listing
// endpoint (spec.md §3.2, §4.4.2). Features is nil when the gateway's
// FireFeature object was absent from the response.
type Fire struct {
	FireID          string
	FriendlyName    string
	Brand           string
	ProductType     string
	ProductModel    string
	ItemCode        string
	ConnectionState ConnectionState
	WithHeat        bool
	IsIotFire       bool
	Features        *FireFeatures
}
