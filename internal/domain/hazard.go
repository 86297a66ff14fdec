package domain

// HazardKind identifies one of the six tracked hazard categories.
type HazardKind string

const (
	KindFunnel   HazardKind = "funnel"
	KindRotation HazardKind = "rotation"
	KindTornado  HazardKind = "tornado"
	KindHail     HazardKind = "hail"
	KindWind     HazardKind = "wind"
	KindFlooding HazardKind = "flooding"
)

// Status distinguishes radar-detected hazards from ground-truth reports.
// It is user-settable for hail, wind, and flooding only; rotation and funnel
// are always detected, tornado is always reported.
type Status string

const (
	StatusDetected Status = "detected"
	StatusReported Status = "reported"
)

// Mode selects which composition path is active.
type Mode string

const (
	ModeStorm    Mode = "storm"
	ModeRegional Mode = "regional"
)

// HazardOption is one selectable entry in a hazard kind's option table.
type HazardOption struct {
	Value  string `json:"value"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Phrase string `json:"phrase"`
}

// Option values beyond "none", named so callers and tests avoid raw strings.
const (
	FunnelCloud = "funnel"

	RotationWeak    = "weak"
	RotationStrong  = "strong"
	RotationIntense = "intense"

	TornadoPossible = "possible"
	TornadoReported = "reported"
	TornadoDamaging = "damaging_reported"

	HailSmall     = "small"
	HailLarge     = "large"
	HailVeryLarge = "very_large"

	WindStrong      = "strong"
	WindDamaging    = "damaging"
	WindDestructive = "destructive"

	FloodingMinor = "minor"
	FloodingFlash = "flash"
)

// Option tables. The first entry of every table is the "none" baseline.
var (
	funnelOptions = []HazardOption{
		{Value: "none", Name: "None", Level: 0, Phrase: ""},
		{Value: FunnelCloud, Name: "Funnel Cloud", Level: 1, Phrase: "Funnel Clouds"},
	}

	rotationOptions = []HazardOption{
		{Value: "none", Name: "None", Level: 0, Phrase: ""},
		{Value: RotationWeak, Name: "Weak Rotation", Level: 1, Phrase: "Weak Rotation"},
		{Value: RotationStrong, Name: "Strong Rotation", Level: 2, Phrase: "Strong Rotation"},
		{Value: RotationIntense, Name: "Intense Rotation", Level: 3, Phrase: "Intense Rotation"},
	}

	tornadoOptions = []HazardOption{
		{Value: "none", Name: "None", Level: 0, Phrase: ""},
		{Value: TornadoPossible, Name: "Tornado Possible", Level: 1, Phrase: "Tornado Possible"},
		{Value: TornadoReported, Name: "Tornado Reported", Level: 2, Phrase: "Tornado"},
		{Value: TornadoDamaging, Name: "Damaging Tornado Reported", Level: 3, Phrase: "Damaging Tornado"},
	}

	hailOptions = []HazardOption{
		{Value: "none", Name: "None", Level: 0, Phrase: ""},
		{Value: HailSmall, Name: "Small Hail", Level: 1, Phrase: "Small Hail"},
		{Value: HailLarge, Name: "Large Hail", Level: 2, Phrase: "Large Hail"},
		{Value: HailVeryLarge, Name: "Very Large Hail", Level: 3, Phrase: "Very Large Hail"},
	}

	windOptions = []HazardOption{
		{Value: "none", Name: "None", Level: 0, Phrase: ""},
		{Value: WindStrong, Name: "Strong Winds", Level: 1, Phrase: "Strong Winds"},
		{Value: WindDamaging, Name: "Damaging Winds", Level: 2, Phrase: "Damaging Winds"},
		{Value: WindDestructive, Name: "Destructive Winds", Level: 4, Phrase: "Destructive Winds"},
	}

	floodingOptions = []HazardOption{
		{Value: "none", Name: "None", Level: 0, Phrase: ""},
		{Value: FloodingMinor, Name: "Minor Flooding", Level: 1, Phrase: "Minor Flooding"},
		{Value: FloodingFlash, Name: "Flash Flooding", Level: 2, Phrase: "Flash Flooding"},
	}
)

// hazardPriority orders hazard kinds for headline and description rendering.
// Used as the tie-break after sorting by level.
var hazardPriority = []HazardKind{
	KindTornado,
	KindRotation,
	KindHail,
	KindWind,
	KindFlooding,
	KindFunnel,
}

// Options returns the option table for a hazard kind.
// Returns nil for an unrecognized kind.
func Options(kind HazardKind) []HazardOption {
	switch kind {
	case KindFunnel:
		return funnelOptions
	case KindRotation:
		return rotationOptions
	case KindTornado:
		return tornadoOptions
	case KindHail:
		return hailOptions
	case KindWind:
		return windOptions
	case KindFlooding:
		return floodingOptions
	default:
		return nil
	}
}

// Catalog returns the full hazard catalog in priority order,
// for clients that render selection forms.
func Catalog() map[HazardKind][]HazardOption {
	catalog := make(map[HazardKind][]HazardOption, len(hazardPriority))
	for _, kind := range hazardPriority {
		catalog[kind] = Options(kind)
	}
	return catalog
}

// optionFor resolves a selected value to its option. Unknown or empty values
// resolve to the kind's "none" baseline, so selections are always total.
func optionFor(kind HazardKind, value string) HazardOption {
	opts := Options(kind)
	if len(opts) == 0 {
		return HazardOption{Value: "none", Name: "None"}
	}
	for _, opt := range opts {
		if opt.Value == value {
			return opt
		}
	}
	return opts[0]
}

// Selection holds the chosen option value for each hazard kind.
// The closed field set gives compile-time exhaustiveness over hazard kinds;
// zero values mean "none".
type Selection struct {
	Funnel   string `json:"funnel,omitempty"`
	Rotation string `json:"rotation,omitempty"`
	Tornado  string `json:"tornado,omitempty"`
	Hail     string `json:"hail,omitempty"`
	Wind     string `json:"wind,omitempty"`
	Flooding string `json:"flooding,omitempty"`
}

// value returns the selected option value for a kind.
func (s Selection) value(kind HazardKind) string {
	switch kind {
	case KindFunnel:
		return s.Funnel
	case KindRotation:
		return s.Rotation
	case KindTornado:
		return s.Tornado
	case KindHail:
		return s.Hail
	case KindWind:
		return s.Wind
	case KindFlooding:
		return s.Flooding
	default:
		return ""
	}
}

// option resolves the selected option for a kind.
func (s Selection) option(kind HazardKind) HazardOption {
	return optionFor(kind, s.value(kind))
}

// StatusSet holds the user-settable statuses. Kinds with forced statuses
// (funnel, rotation, tornado) have no field here.
type StatusSet struct {
	Hail     Status `json:"hail,omitempty"`
	Wind     Status `json:"wind,omitempty"`
	Flooding Status `json:"flooding,omitempty"`
}

// statusFor returns the effective status for a hazard kind, applying the
// forced-status rules and defaulting unset fields to detected.
func statusFor(kind HazardKind, statuses StatusSet) Status {
	switch kind {
	case KindRotation, KindFunnel:
		return StatusDetected
	case KindTornado:
		return StatusReported
	case KindHail:
		return normalizeStatus(statuses.Hail)
	case KindWind:
		return normalizeStatus(statuses.Wind)
	case KindFlooding:
		return normalizeStatus(statuses.Flooding)
	default:
		return StatusDetected
	}
}

func normalizeStatus(s Status) Status {
	if s == StatusReported {
		return StatusReported
	}
	return StatusDetected
}

// activeHazard pairs a selected hazard kind with its resolved option.
type activeHazard struct {
	Kind   HazardKind
	Option HazardOption
}

// activeHazards returns the selected hazards with level > 0, ordered by level
// descending with the fixed priority order as tie-break. Iterating the
// priority list and using a stable sort preserves priority among equal levels.
func activeHazards(sel Selection) []activeHazard {
	active := make([]activeHazard, 0, len(hazardPriority))
	for _, kind := range hazardPriority {
		opt := sel.option(kind)
		if opt.Level > 0 {
			active = append(active, activeHazard{Kind: kind, Option: opt})
		}
	}
	// Insertion sort by level descending; stable, and the slice is at most six long.
	for i := 1; i < len(active); i++ {
		for j := i; j > 0 && active[j].Option.Level > active[j-1].Option.Level; j-- {
			active[j], active[j-1] = active[j-1], active[j]
		}
	}
	return active
}
