// Package langdetect classifies ticket text into a short language tag.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// UnknownTag is reported when no language could be determined.
const UnknownTag = "unknown"

// Result is either Detected(tag) or Unknown.
type Result struct {
	tag string
}

// Unknown is the result for empty, degenerate or ambiguous input.
var Unknown = Result{}

// Detected wraps a lower-case ISO 639-1 code.
func Detected(tag string) Result {
	return Result{tag: strings.ToLower(strings.TrimSpace(tag))}
}

// Tag returns the language code, or "unknown".
func (r Result) Tag() string {
	if r.tag == "" {
		return UnknownTag
	}
	return r.tag
}

func (r Result) IsUnknown() bool { return r.tag == "" }

func (r Result) String() string { return r.Tag() }

// supportedLanguages limits the models lingua loads. Besides the three ticket
// languages it covers the ones most often confused with them, so that a
// Korean or French ticket is reported as such instead of being forced into
// en/ja/zh.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Japanese,
	lingua.Chinese,
	lingua.Korean,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Russian,
	lingua.Vietnamese,
	lingua.Thai,
}

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build(),
	}
}

// Detect never fails: anything the engine cannot classify is Unknown.
func (d *Detector) Detect(text string) (result Result) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown
	}

	defer func() {
		if recover() != nil {
			result = Unknown
		}
	}()

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok || language == lingua.Unknown {
		return Unknown
	}
	return Detected(language.IsoCode639_1().String())
}
