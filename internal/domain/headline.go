package domain

import "strings"

// Headline fallbacks when no hazard phrase applies.
const (
	stormFallback    = "Hazardous Weather Detected"
	regionalFallback = "Weather Potential"
)

// BuildHeadline renders the headline for a request at the given final level:
// "{label}: {hazard phrases}", case-transformed per the level, with the
// optional hashtag prefix applied last so the tags keep their exact casing.
func BuildHeadline(req Request, level Level) string {
	var phrases []string
	if req.normalizedMode() == ModeRegional {
		phrases = regionalPhrases(req)
	} else {
		phrases = stormPhrases(req.Hazards, req.Statuses)
	}

	body := JoinList(phrases)
	if body == "" {
		if req.normalizedMode() == ModeRegional {
			body = regionalFallback
		} else {
			body = stormFallback
		}
	}

	headline := HeadlineCase(level.Label()+": "+body, level)

	if req.AddHashtags {
		if p, ok := ProvinceByCode(req.Province); ok {
			headline = "#" + p.Code + "Storm #" + p.Code + "wx " + headline
		}
	}
	return headline
}

// stormPhrases maps the active hazards, in severity-then-priority order, to
// their headline phrases with the appropriate status suffix.
func stormPhrases(sel Selection, statuses StatusSet) []string {
	active := activeHazards(sel)
	phrases := make([]string, 0, len(active))
	for _, h := range active {
		if p := headlinePhrase(h.Kind, h.Option, statusFor(h.Kind, statuses)); p != "" {
			phrases = append(phrases, p)
		}
	}
	return phrases
}

// headlinePhrase renders one hazard's headline fragment. Most options take a
// "Detected"/"Reported" suffix from their effective status; "Tornado
// Possible" is a forecast, not an observation, and carries no suffix.
func headlinePhrase(kind HazardKind, opt HazardOption, status Status) string {
	if opt.Phrase == "" {
		return ""
	}
	if kind == KindTornado && opt.Value == TornadoPossible {
		return opt.Phrase
	}
	return opt.Phrase + " " + statusWord(status)
}

func statusWord(status Status) string {
	if status == StatusReported {
		return "Reported"
	}
	return "Detected"
}

// regionalPhrases derives the headline phrases for a regional notification
// from the exclusive potential choice plus the optional tornado-risk flag.
// No choice means no phrases, which triggers the fallback.
func regionalPhrases(req Request) []string {
	var phrases []string
	switch strings.ToLower(strings.TrimSpace(req.RegionalChoice)) {
	case RegionalFunnel:
		phrases = append(phrases, "Funnel Cloud Potential")
	case RegionalSevere:
		phrases = append(phrases, "Severe Thunderstorm Potential")
	default:
		return nil
	}
	if req.TornadoRisk {
		phrases = append(phrases, "Tornado Risk")
	}
	return phrases
}
