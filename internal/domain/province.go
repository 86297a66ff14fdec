package domain

import (
	"strings"
	"time"
	_ "time/tzdata" // zone data for hosts without a system tz database
)

// Province describes one Canadian province or territory.
type Province struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// provinces is the closed set of Canadian province and territory codes.
// Timezones are the zone of each province's main population centre;
// multi-zone provinces (BC, ON, QC, NU) use the zone most of their
// population lives in.
var provinces = map[string]Province{
	"AB": {Code: "AB", Name: "Alberta", Timezone: "America/Edmonton"},
	"BC": {Code: "BC", Name: "British Columbia", Timezone: "America/Vancouver"},
	"MB": {Code: "MB", Name: "Manitoba", Timezone: "America/Winnipeg"},
	"NB": {Code: "NB", Name: "New Brunswick", Timezone: "America/Halifax"},
	"NL": {Code: "NL", Name: "Newfoundland and Labrador", Timezone: "America/St_Johns"},
	"NS": {Code: "NS", Name: "Nova Scotia", Timezone: "America/Halifax"},
	"NT": {Code: "NT", Name: "Northwest Territories", Timezone: "America/Yellowknife"},
	"NU": {Code: "NU", Name: "Nunavut", Timezone: "America/Iqaluit"},
	"ON": {Code: "ON", Name: "Ontario", Timezone: "America/Toronto"},
	"PE": {Code: "PE", Name: "Prince Edward Island", Timezone: "America/Halifax"},
	"QC": {Code: "QC", Name: "Quebec", Timezone: "America/Montreal"},
	"SK": {Code: "SK", Name: "Saskatchewan", Timezone: "America/Regina"},
	"YT": {Code: "YT", Name: "Yukon", Timezone: "America/Whitehorse"},
}

// ProvinceByCode looks up a province by its two-letter code, case-insensitively.
func ProvinceByCode(code string) (Province, bool) {
	p, ok := provinces[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// Provinces returns all provinces sorted by code.
func Provinces() []Province {
	codes := make([]string, 0, len(provinces))
	for code := range provinces {
		codes = append(codes, code)
	}
	// Small fixed set; insertion sort keeps output deterministic.
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && codes[j] < codes[j-1]; j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
	out := make([]Province, len(codes))
	for i, code := range codes {
		out[i] = provinces[code]
	}
	return out
}

// FormatLocalTime renders a timestamp in a province's timezone as
// "Monday, January 2, 2006 at 3:04 PM MST". Unknown provinces and
// unavailable zones fall back to UTC.
func FormatLocalTime(t time.Time, provinceCode string) string {
	loc := time.UTC
	if p, ok := ProvinceByCode(provinceCode); ok {
		if l, err := time.LoadLocation(p.Timezone); err == nil {
			loc = l
		}
	}
	return t.In(loc).Format("Monday, January 2, 2006 at 3:04 PM MST")
}

// ReportingGroup names the community storm-reporting group for a province.
// URL is empty for provinces without an established group.
type ReportingGroup struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// ReportingGroupFor returns the community reporting group for a province.
// Ontario, the Prairies, and the Atlantic provinces have established groups
// with pages; everywhere else gets a generated name with no URL.
func ReportingGroupFor(provinceCode string) ReportingGroup {
	code := strings.ToUpper(strings.TrimSpace(provinceCode))
	switch code {
	case "ON":
		return ReportingGroup{
			Name: "Ontario Storm Reports",
			URL:  "https://www.facebook.com/groups/ontariostormreports",
		}
	case "AB", "SK", "MB":
		return ReportingGroup{
			Name: "Prairie Storm Reports",
			URL:  "https://www.facebook.com/groups/prairiestormreports",
		}
	case "NB", "NS", "PE", "NL":
		return ReportingGroup{
			Name: "Atlantic Storm Reports",
			URL:  "https://www.facebook.com/groups/atlanticstormreports",
		}
	}
	if p, ok := ProvinceByCode(code); ok {
		return ReportingGroup{Name: p.Name + " Storm Reports"}
	}
	return ReportingGroup{Name: "your local storm reporting group"}
}
