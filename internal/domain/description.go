package domain

import (
	"fmt"
	"strings"
	"time"
)

// BuildDescription assembles the multi-paragraph notification body. Empty
// paragraphs are dropped and the remainder joined with blank lines. Like
// every builder in this package it is total: absent fields omit their
// sentences rather than erroring.
func BuildDescription(req Request, level Level, issuedAt time.Time) string {
	var paragraphs []string
	if req.normalizedMode() == ModeRegional {
		paragraphs = regionalParagraphs(req)
	} else {
		paragraphs = stormParagraphs(req, level, issuedAt)
	}
	return joinParagraphs(paragraphs)
}

func joinParagraphs(paragraphs []string) string {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, "\n\n")
}

// levelMeaning is the fixed explanation sentence for each severity level.
func levelMeaning(level Level) string {
	switch level {
	case LevelPrepare:
		return "Low immediate risk, but conditions can change quickly."
	case LevelAct:
		return "Action is advised soon. Conditions are expected to deteriorate."
	case LevelCritical:
		return "High impact threat. Shelter now."
	case LevelEmergency:
		return "Life-threatening situation. Take immediate shelter."
	default:
		return "Low immediate risk, but conditions can change quickly."
	}
}

// stormParagraphs renders the storm-mode body: context, primary threat,
// additional threats, safety guidance, and the reporting call to action.
func stormParagraphs(req Request, level Level, issuedAt time.Time) []string {
	active := activeHazards(req.Hazards)

	var primary *activeHazard
	if len(active) > 0 {
		primary = &active[0]
	}

	return []string{
		contextParagraph(req, level, issuedAt),
		primaryThreatParagraph(req, primary),
		additionalThreatsParagraph(active),
		safetyParagraph(primary),
		reportingParagraph(req.Province),
	}
}

// contextParagraph opens the body: severity label and meaning, then the
// storm's position and motion, towns in the path, and the impact window.
func contextParagraph(req Request, level Level, issuedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", level.Label(), levelMeaning(level))

	if loc := strings.TrimSpace(req.Location); loc != "" {
		fmt.Fprintf(&b, " At %s, this storm was located near %s", FormatLocalTime(issuedAt, req.Province), loc)
		if dir := strings.TrimSpace(req.MotionDirection); dir != "" {
			fmt.Fprintf(&b, ", moving %s", dir)
			if speed := strings.TrimSpace(req.SpeedKMH); speed != "" {
				fmt.Fprintf(&b, " at %s km/h", speed)
			}
		}
		b.WriteString(".")
	}

	if towns := JoinList(req.Towns); towns != "" {
		fmt.Fprintf(&b, " Towns in the path of this storm include %s.", towns)
	}
	if window := strings.TrimSpace(req.TimeWindow); window != "" {
		fmt.Fprintf(&b, " This storm is expected to impact the area %s.", window)
	}
	return b.String()
}

// primaryThreatParagraph describes the single highest-priority hazard,
// folding in the optional magnitude fields and any ground report.
func primaryThreatParagraph(req Request, primary *activeHazard) string {
	if primary == nil {
		return ""
	}
	sentence := threatSentence(req, primary.Kind, primary.Option)
	if sentence == "" {
		return ""
	}

	if notes := strings.TrimSpace(req.ReportNotes); notes != "" {
		if reporter := strings.TrimSpace(req.ReporterName); reporter != "" {
			sentence += fmt.Sprintf(" %s reports: %s", reporter, notes)
		} else {
			sentence += fmt.Sprintf(" Storm report: %s", notes)
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
	}
	return sentence
}

// threatSentence renders the descriptive sentence for one hazard option.
// The switch is exhaustive over the catalog so a new option cannot silently
// render nothing.
func threatSentence(req Request, kind HazardKind, opt HazardOption) string {
	status := statusFor(kind, req.Statuses)
	verb := "detected"
	if status == StatusReported {
		verb = "reported"
	}

	switch kind {
	case KindTornado:
		switch opt.Value {
		case TornadoPossible:
			return "Conditions with this storm are favourable for tornado development."
		case TornadoReported:
			return "A tornado has been reported with this storm."
		case TornadoDamaging:
			return "A damaging tornado has been reported with this storm. This is an extremely dangerous situation."
		}
	case KindRotation:
		switch opt.Value {
		case RotationWeak:
			return "Weak rotation has been detected with this storm. A funnel cloud or weak tornado could develop."
		case RotationStrong:
			return "Strong rotation has been detected with this storm. A tornado could develop with little warning."
		case RotationIntense:
			return "Intense rotation has been detected with this storm. A tornado may develop or already be occurring."
		}
	case KindHail:
		size := strings.TrimSpace(req.MaxHailSizeCM)
		switch opt.Value {
		case HailSmall:
			if size != "" {
				return fmt.Sprintf("Small hail up to %s cm in diameter has been %s with this storm.", size, verb)
			}
			return fmt.Sprintf("Small hail has been %s with this storm.", verb)
		case HailLarge:
			if size != "" {
				return fmt.Sprintf("Large hail up to %s cm in diameter has been %s with this storm. Hail this size can damage vehicles and property.", size, verb)
			}
			return fmt.Sprintf("Large hail has been %s with this storm. Hail this size can damage vehicles and property.", verb)
		case HailVeryLarge:
			if size != "" {
				return fmt.Sprintf("Very large hail up to %s cm in diameter has been %s with this storm. Hail this size can cause serious injury and significant damage.", size, verb)
			}
			return fmt.Sprintf("Very large hail has been %s with this storm. Hail this size can cause serious injury and significant damage.", verb)
		}
	case KindWind:
		gust := strings.TrimSpace(req.MaxWindGustKMH)
		switch opt.Value {
		case WindStrong:
			if gust != "" {
				return fmt.Sprintf("Strong wind gusts up to %s km/h have been %s with this storm.", gust, verb)
			}
			return fmt.Sprintf("Strong wind gusts have been %s with this storm.", verb)
		case WindDamaging:
			if gust != "" {
				return fmt.Sprintf("Damaging wind gusts up to %s km/h have been %s with this storm. Winds this strong can down trees and power lines.", gust, verb)
			}
			return fmt.Sprintf("Damaging wind gusts have been %s with this storm. Winds this strong can down trees and power lines.", verb)
		case WindDestructive:
			if gust != "" {
				return fmt.Sprintf("Destructive winds up to %s km/h have been %s with this storm. Winds this strong cause major structural damage.", gust, verb)
			}
			return fmt.Sprintf("Destructive winds have been %s with this storm. Winds this strong cause major structural damage.", verb)
		}
	case KindFlooding:
		switch opt.Value {
		case FloodingMinor:
			return fmt.Sprintf("Minor flooding has been %s in the area. Low-lying roads may be covered by water.", verb)
		case FloodingFlash:
			return fmt.Sprintf("Flash flooding has been %s in the area. Water levels can rise very quickly.", verb)
		}
	case KindFunnel:
		if opt.Value == FunnelCloud {
			if ft := strings.TrimSpace(req.FunnelType); ft != "" {
				return fmt.Sprintf("A %s funnel cloud has been detected with this storm.", strings.ToLower(ft))
			}
			return "A funnel cloud has been detected with this storm."
		}
	}
	return ""
}

// additionalThreatsParagraph lists every remaining hazard after the primary
// as a lowercase noun phrase, list-joined.
func additionalThreatsParagraph(active []activeHazard) string {
	if len(active) < 2 {
		return ""
	}
	phrases := make([]string, 0, len(active)-1)
	for _, h := range active[1:] {
		phrases = append(phrases, strings.ToLower(h.Option.Phrase))
	}
	return fmt.Sprintf("Additional hazards with this storm include %s.", JoinList(phrases))
}

// safetyParagraph selects the action guidance for the primary hazard, always
// suffixed with the stay-tuned sentence.
func safetyParagraph(primary *activeHazard) string {
	guidance := "Stay alert and be prepared to act quickly if threatening weather approaches."
	if primary != nil {
		if g := safetyGuidance(primary.Kind, primary.Option.Value); g != "" {
			guidance = g
		}
	}
	return guidance + " Stay tuned to local media and trusted weather sources for updated information."
}

// safetyGuidance maps the primary hazard's kind and value to its fixed
// action sentences. Unknown combinations fall back to the generic guidance.
func safetyGuidance(kind HazardKind, value string) string {
	switch kind {
	case KindTornado:
		return "Take shelter immediately in the lowest level of a sturdy building, away from windows. Vehicles and mobile homes are not safe shelter."
	case KindRotation:
		switch value {
		case RotationWeak:
			return "Keep an eye on the sky and be ready to move indoors if a funnel cloud forms."
		case RotationStrong:
			return "Be prepared to take shelter immediately. Identify the safest interior room on the lowest level of your home now."
		case RotationIntense:
			return "Take shelter now in the lowest level of a sturdy building, away from windows. Do not wait for a visible tornado."
		}
	case KindFunnel:
		return "Most funnel clouds do not touch down, but any can. Be ready to take shelter indoors if one approaches."
	case KindHail:
		return "Stay indoors and away from windows and skylights. Move vehicles under cover and bring animals inside if time permits."
	case KindWind:
		if value == WindDestructive {
			return "Take shelter immediately in a sturdy building, away from windows. Flying debris is deadly in winds this strong."
		}
		return "Secure or bring in loose outdoor objects and stay away from windows. Be prepared for power outages."
	case KindFlooding:
		return "Never drive through flooded roads. Turn around and find another route. Keep children away from culverts and fast-moving water."
	}
	return ""
}

// reportingParagraph is the fixed call to action naming the province's
// community reporting group.
func reportingParagraph(provinceCode string) string {
	group := ReportingGroupFor(provinceCode)
	if group.URL != "" {
		return fmt.Sprintf("If it is safe to do so, share photos and reports of this weather with the %s group at %s.", group.Name, group.URL)
	}
	return fmt.Sprintf("If it is safe to do so, share photos and reports of this weather with %s.", group.Name)
}

// regionalParagraphs renders the regional-mode body. One of three templates
// is selected by the exclusive potential choice.
func regionalParagraphs(req Request) []string {
	where := ""
	if regions := strings.TrimSpace(req.Regions); regions != "" {
		where = " across " + regions
	}
	when := ""
	if tf := strings.TrimSpace(req.Timeframe); tf != "" {
		when = " " + tf
	}

	var lead, guidance string
	switch strings.ToLower(strings.TrimSpace(req.RegionalChoice)) {
	case RegionalFunnel:
		lead = fmt.Sprintf("Conditions%s are favourable for the development of funnel clouds%s. "+
			"These funnel clouds typically form under rapidly growing clouds or weak thunderstorms "+
			"and only rarely touch down as brief, weak landspout tornadoes.", where, when)
		guidance = "Treat any funnel cloud seriously. If one approaches, take shelter indoors and stay away from windows."
	case RegionalSevere:
		lead = fmt.Sprintf("Conditions%s are favourable for the development of severe thunderstorms%s.", where, when)
		if risks := JoinList(req.RegionalRisks); risks != "" {
			lead += fmt.Sprintf(" The main threats are %s.", risks)
		}
		guidance = "Have a way to receive warnings and be prepared to act if a warning is issued for your area."
	default:
		lead = fmt.Sprintf("Weather conditions%s will be monitored%s.", where, when)
		guidance = "Stay alert and be prepared to act quickly if threatening weather approaches."
	}

	if req.TornadoRisk {
		lead += " There is also a risk that a tornado could develop."
	}

	return []string{
		lead,
		guidance + " Stay tuned to local media and trusted weather sources for updated information.",
		reportingParagraph(req.Province),
	}
}
