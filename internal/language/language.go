package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// words maps English word forms to ISO 639-1 codes.
var words = map[string]string{
	"english":    "en",
	"russian":    "ru",
	"ukrainian":  "uk",
	"belarusian": "be",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"arabic":     "ar",
	"hindi":      "hi",
	"dutch":      "nl",
	"polish":     "pl",
	"swedish":    "sv",
	"danish":     "da",
	"norwegian":  "no",
	"finnish":    "fi",
}

// Parse resolves a tag, ISO code, or English word form.
func Parse(code string) (language.Tag, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return language.Und, fmt.Errorf("empty language code")
	}
	if mapped, ok := words[code]; ok {
		code = mapped
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("unrecognized language %q: %w", code, err)
	}
	return tag, nil
}

// Code returns the canonical BCP 47 form of code, or "und" when it cannot be
// parsed.
func Code(code string) string {
	tag, err := Parse(code)
	if err != nil {
		return language.Und.String()
	}
	return tag.String()
}

// ToISO3 returns the ISO 639-2 code for code, or "und".
func ToISO3(code string) string {
	tag, err := Parse(code)
	if err != nil {
		return "und"
	}
	base, _ := tag.Base()
	return base.ISO3()
}

// DisplayName returns the English name for code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	tag, err := Parse(code)
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
