package domain

import "time"

// Regional exclusive-choice values.
const (
	RegionalFunnel = "funnel"
	RegionalSevere = "severe"
)

// Request carries everything the composition engine needs: the hazard
// selections, the policy flags, and the free-text contextual fields. All
// fields are optional; empty values simply omit their contribution to the
// composed text.
type Request struct {
	Mode     Mode   `json:"mode"`
	Province string `json:"province"`

	Hazards  Selection `json:"hazards"`
	Statuses StatusSet `json:"statuses"`

	// MajorPopulationInPath escalates rotation and tornado selections;
	// HailMajorPopulation escalates hail selections. See ResolveSeverity.
	MajorPopulationInPath bool `json:"major_population_in_path,omitempty"`
	HailMajorPopulation   bool `json:"hail_major_population,omitempty"`

	AddHashtags bool `json:"add_hashtags,omitempty"`

	// Storm-mode contextual fields.
	Location        string   `json:"location,omitempty"`
	MotionDirection string   `json:"motion_direction,omitempty"`
	SpeedKMH        string   `json:"speed_kmh,omitempty"`
	Towns           []string `json:"towns,omitempty"`
	TimeWindow      string   `json:"time_window,omitempty"`
	MaxHailSizeCM   string   `json:"max_hail_size_cm,omitempty"`
	MaxWindGustKMH  string   `json:"max_wind_gust_kmh,omitempty"`
	FunnelType      string   `json:"funnel_type,omitempty"`
	ReportNotes     string   `json:"report_notes,omitempty"`
	ReporterName    string   `json:"reporter_name,omitempty"`

	// Regional-mode fields.
	RegionalChoice string   `json:"regional_choice,omitempty"`
	Regions        string   `json:"regions,omitempty"`
	Timeframe      string   `json:"timeframe,omitempty"`
	RegionalRisks  []string `json:"regional_risks,omitempty"`
	TornadoRisk    bool     `json:"tornado_risk,omitempty"`
}

// normalizedMode returns the request mode, defaulting unknown values to storm.
func (r Request) normalizedMode() Mode {
	if r.Mode == ModeRegional {
		return ModeRegional
	}
	return ModeStorm
}

// Notification is the composed output: severity plus the two rendered strings.
type Notification struct {
	ID            string    `json:"id,omitempty"`
	Mode          Mode      `json:"mode"`
	Province      string    `json:"province,omitempty"`
	Severity      int       `json:"severity"`
	SeverityLabel string    `json:"severity_label"`
	SeverityColor string    `json:"severity_color"`
	Headline      string    `json:"headline"`
	Description   string    `json:"description"`
	IssuedAt      time.Time `json:"issued_at"`
}

// Compose runs the full composition pipeline: severity resolution, headline,
// and description. The issue time is read once from the package clock so the
// notification metadata and the timestamp sentence in the body agree.
// Compose is total and never fails; the ID is left for the caller to stamp.
func Compose(req Request) Notification {
	mode := req.normalizedMode()
	level := ResolveSeverity(req.Hazards, req.MajorPopulationInPath, req.HailMajorPopulation, mode)
	issuedAt := clock.Now()

	return Notification{
		Mode:          mode,
		Province:      normalizeProvince(req.Province),
		Severity:      int(level),
		SeverityLabel: level.Label(),
		SeverityColor: level.Color(),
		Headline:      BuildHeadline(req, level),
		Description:   BuildDescription(req, level, issuedAt),
		IssuedAt:      issuedAt,
	}
}

func normalizeProvince(code string) string {
	if p, ok := ProvinceByCode(code); ok {
		return p.Code
	}
	return ""
}
