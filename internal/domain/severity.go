package domain

// Level is the resolved severity of a notification, always in [1,4].
type Level int

const (
	LevelPrepare   Level = 1
	LevelAct       Level = 2
	LevelCritical  Level = 3
	LevelEmergency Level = 4
)

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case LevelPrepare:
		return "Prepare"
	case LevelAct:
		return "Act"
	case LevelCritical:
		return "Critical"
	case LevelEmergency:
		return "Emergency"
	default:
		return "Prepare"
	}
}

// Color returns the display color associated with a level.
func (l Level) Color() string {
	switch l {
	case LevelPrepare:
		return "#ffd60a"
	case LevelAct:
		return "#ff9f0a"
	case LevelCritical:
		return "#ff453a"
	case LevelEmergency:
		return "#bf5af2"
	default:
		return "#ffd60a"
	}
}

// clampLevel forces a raw level into the valid [1,4] range.
func clampLevel(n int) Level {
	if n < 1 {
		return LevelPrepare
	}
	if n > 4 {
		return LevelEmergency
	}
	return Level(n)
}

// ResolveSeverity computes the final severity for a request.
//
// Regional notifications never escalate via hazard logic and are always
// level 1. For storm notifications the base is the maximum option level
// across all selections, clamped to [1,4]; policy overrides may then raise
// the result. Overrides only ever raise, so the final level is the maximum
// of the base and every applicable override.
func ResolveSeverity(sel Selection, majorPopInPath, hailMajorPop bool, mode Mode) Level {
	if mode == ModeRegional {
		return LevelPrepare
	}

	// Destructive winds are an automatic emergency regardless of anything else.
	if sel.Wind == WindDestructive {
		return LevelEmergency
	}

	maxLevel := 0
	for _, kind := range hazardPriority {
		if lvl := sel.option(kind).Level; lvl > maxLevel {
			maxLevel = lvl
		}
	}
	level := clampLevel(maxLevel)

	if majorPopInPath {
		switch sel.Rotation {
		case RotationStrong:
			level = maxLevelOf(level, LevelCritical)
		case RotationIntense:
			level = maxLevelOf(level, LevelEmergency)
		}
		switch sel.Tornado {
		case TornadoReported:
			level = maxLevelOf(level, LevelCritical)
		case TornadoDamaging:
			level = maxLevelOf(level, LevelEmergency)
		}
	}

	if hailMajorPop {
		switch sel.Hail {
		case HailLarge:
			level = maxLevelOf(level, LevelCritical)
		case HailVeryLarge:
			level = maxLevelOf(level, LevelEmergency)
		}
	}

	return level
}

func maxLevelOf(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
