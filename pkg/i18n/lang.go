package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested or negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size accepted by ParseAcceptLanguage.
const maxAcceptLanguageLength = 4096

// Normalize returns the canonical BCP 47 form of code (en_us -> en-US).
// Codes that do not parse are lowercased and trimmed.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	return tag.String()
}

// Equal reports whether two language codes are spelled the same, ignoring
// case, surrounding spaces and the separator (en_us == en-US). Distinct codes
// for one language, such as iw and he or eng and en, are not equal.
func Equal(a, b string) bool {
	return strings.EqualFold(foldSeparators(a), foldSeparators(b))
}

func foldSeparators(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
}

// Base returns the primary language subtag of code (en-US -> en).
func Base(code string) string {
	code = Normalize(code)
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}

type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader splits an Accept-Language header and orders the
// entries by quality, highest first. Malformed entries keep q=1.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		langAndQ := strings.Split(part, ";")
		lang := strings.TrimSpace(langAndQ[0])
		if lang == "" || lang == "*" {
			continue
		}
		q := 1.0
		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if v, ok := strings.CutPrefix(qPart, "q="); ok {
				if qVal, err := strconv.ParseFloat(v, 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage picks the supported language that best satisfies an
// Accept-Language header. Exact matches are tried across all entries before
// base language matches (fr-CA -> fr). The returned value is the supported
// entry as given. defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		for _, s := range supportedLangs {
			if Equal(lq.lang, s) {
				return s
			}
		}
	}
	for _, lq := range languages {
		base := Base(lq.lang)
		for _, s := range supportedLangs {
			if Equal(base, s) {
				return s
			}
		}
	}
	return defaultLang
}
