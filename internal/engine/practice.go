package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Practice is a trackable act of worship with a fixed Barakah award.
type Practice struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Points int    `json:"points"`
}

var practices = map[string]Practice{
	"fajr":    {Code: "fajr", Name: "Fajr prayer", Icon: "🌅", Points: 25},
	"dhuhr":   {Code: "dhuhr", Name: "Dhuhr prayer", Icon: "☀️", Points: 25},
	"asr":     {Code: "asr", Name: "Asr prayer", Icon: "🌤️", Points: 25},
	"maghrib": {Code: "maghrib", Name: "Maghrib prayer", Icon: "🌇", Points: 25},
	"isha":    {Code: "isha", Name: "Isha prayer", Icon: "🌙", Points: 25},
	"dhikr":   {Code: "dhikr", Name: "Dhikr session", Icon: "📿", Points: 10},
	"quran":   {Code: "quran", Name: "Quran reading", Icon: "📖", Points: 20},
	"hifdh":   {Code: "hifdh", Name: "Memorization review", Icon: "🧠", Points: 30},
	"journal": {Code: "journal", Name: "Journal entry", Icon: "📓", Points: 15},
	"fast":    {Code: "fast", Name: "Voluntary fast", Icon: "🕌", Points: 40},
}

// Practices returns the catalog ordered by code.
func Practices() []Practice {
	out := make([]Practice, 0, len(practices))
	for _, p := range practices {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ParsePractice resolves user input to a catalog entry.
func ParsePractice(input string) (Practice, error) {
	code := strings.TrimSpace(strings.ToLower(input))
	if p, ok := practices[code]; ok {
		return p, nil
	}
	codes := make([]string, 0, len(practices))
	for c := range practices {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return Practice{}, fmt.Errorf("unknown practice %q (one of: %s)", input, strings.Join(codes, ", "))
}
