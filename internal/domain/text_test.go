package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"basic words", "tornado reported near barrie", "Tornado Reported Near Barrie"},
		{"small word in the middle", "storm of the century", "Storm of the Century"},
		{"small word first stays capitalized", "the storm approaches", "The Storm Approaches"},
		{"small word last stays capitalized", "what this storm is moving to", "What This Storm Is Moving To"},
		{"acronym passthrough", "OPP closed the highway", "OPP Closed the Highway"},
		{"single uppercase letter is not an acronym", "a tornado", "A Tornado"},
		{"hyphen segments capitalize", "south-west of town", "South-West of Town"},
		{"small word inside hyphenated word stays lower", "one-of-a-kind storm", "One-of-a-Kind Storm"},
		{"already title cased", "Prepare: Hazardous Weather Detected", "Prepare: Hazardous Weather Detected"},
		{"empty string", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TitleCase(tc.in))
		})
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	inputs := []string{
		"tornado reported near barrie",
		"storm of the century",
		"OPP closed the highway",
		"one-of-a-kind storm",
	}
	for _, in := range inputs {
		once := TitleCase(in)
		assert.Equal(t, once, TitleCase(once), "TitleCase should be stable on its own output: %q", in)
	}
}

func TestHeadlineCase(t *testing.T) {
	t.Run("all caps at critical and above", func(t *testing.T) {
		assert.Equal(t, "DAMAGING TORNADO REPORTED", HeadlineCase("Damaging Tornado Reported", LevelCritical))
		assert.Equal(t, "DAMAGING TORNADO REPORTED", HeadlineCase("Damaging Tornado Reported", LevelEmergency))
	})

	t.Run("title case below critical", func(t *testing.T) {
		assert.Equal(t, "Large Hail Detected", HeadlineCase("large hail detected", LevelAct))
	})

	t.Run("upper branch is idempotent", func(t *testing.T) {
		s := "Strong Rotation & Large Hail Detected"
		upper := HeadlineCase(s, LevelEmergency)
		assert.Equal(t, upper, HeadlineCase(upper, LevelEmergency))
		assert.Equal(t, strings.ToUpper(upper), upper)
	})
}

func TestJoinList(t *testing.T) {
	cases := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"one item", []string{"A"}, "A"},
		{"two items", []string{"A", "B"}, "A & B"},
		{"three items no oxford comma", []string{"A", "B", "C"}, "A, B & C"},
		{"four items", []string{"A", "B", "C", "D"}, "A, B, C & D"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, JoinList(tc.items))
		})
	}
}
