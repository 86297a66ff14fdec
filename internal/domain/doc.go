// Package domain implements the warning composition engine: it maps a set of
// categorical hazard selections and contextual fields to a severity level, a
// formatted headline, and a multi-paragraph notification body.
//
// # Hazard Model
//
// Six hazard kinds are tracked: funnel, rotation, tornado, hail, wind, and
// flooding. Each kind has a closed set of options (see hazard.go); the first
// option of every kind is the level-0 "none" baseline. Exactly one option is
// selected per kind, with the empty string treated as "none".
//
// Per-hazard status is either "detected" or "reported" and applies only to
// hail, wind, and flooding. Rotation and funnel clouds are radar-indicated
// phenomena and always render as "Detected"; a tornado selection only exists
// once one has been observed, so it always renders as "Reported". This
// asymmetry is an intentional domain rule, not an oversight.
//
// # Severity
//
// Severity is an integer 1-4 (Prepare, Act, Critical, Emergency). The base
// level is the maximum option level across all selections, clamped to [1,4].
// Policy overrides may then raise (never lower) the result; see severity.go.
// Regional notifications are always level 1.
//
// # Text Conventions
//
// Headlines use NYT-style title case below level 3 and all caps at level 3
// and above. Hazard phrase lists are joined with commas and an ampersand
// before the final item, no Oxford comma: "A, B & C".
//
// Timestamps render in the issuing province's timezone as
// "Monday, January 2, 2006 at 3:04 PM MST". Province codes are the thirteen
// Canadian province and territory two-letter codes.
//
// Every function in this package is total: unknown option values contribute
// level 0 and no phrase, empty contextual fields simply omit their sentence.
// Composition cannot fail.
package domain
