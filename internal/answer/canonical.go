package answer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Markup rewrite rules, applied in order by Canonicalize.
var (
	inlineMathRe = regexp.MustCompile(`\$([^$]+)\$`)
	fracRe       = regexp.MustCompile(`\\frac\{([^}]+)\}\{([^}]+)\}`)
	sqrtRe       = regexp.MustCompile(`\\sqrt\{([^}]+)\}`)
	textRe       = regexp.MustCompile(`\\text\{[^}]*\}`)

	variablePrefixRe = regexp.MustCompile(`(?i)^[a-z]\s*=\s*`)
	statusPrefixRe   = regexp.MustCompile(`(?i)^(Not complete|Incomplete|Complete):\s*`)
	completeRe       = regexp.MustCompile(`(?i)^complete$`)
)

var superscripts = strings.NewReplacer("^2", "²", "^3", "³")

// Canonicalize turns a raw answer string (plain text or LaTeX-flavored markup)
// into the token used for equality comparison. It never fails: constructs it
// does not recognize pass through unchanged.
//
// Powers up to 3 are folded to superscript glyphs so that "x^2" and "x²"
// compare equal. Higher powers stay as "^n".
func Canonicalize(s string) string {
	s = inlineMathRe.ReplaceAllString(s, "$1")
	s = fracRe.ReplaceAllString(s, "$1/$2")
	s = sqrtRe.ReplaceAllString(s, "sqrt($1)")
	s = strings.ReplaceAll(s, `\cdot`, "*")
	s = textRe.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if r == '\\' || r == '{' || r == '}' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = lower(s)
	return superscripts.Replace(s)
}

// lightNormalize is the fallback normalization: it only drops dollar signs,
// backslashes and whitespace, and lower-cases. No LaTeX construct is rewritten.
func lightNormalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '$' || r == '\\' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return lower(s)
}

// StripVariablePrefix removes a leading "x =" style assignment so that "x=5"
// and "5" compare equal.
func StripVariablePrefix(s string) string {
	return strings.TrimSpace(variablePrefixRe.ReplaceAllString(s, ""))
}

// stripStatusPrefix removes a "Complete:", "Incomplete:" or "Not complete:"
// label from a stored answer.
func stripStatusPrefix(s string) string {
	return statusPrefixRe.ReplaceAllString(s, "")
}

// HasStatusPrefix reports whether a stored answer still carries a status label.
func HasStatusPrefix(s string) bool {
	return statusPrefixRe.MatchString(s)
}

// IsCompleteSentinel reports whether a stored answer is the bare word
// "Complete", meaning the problem expression is already fully factored.
func IsCompleteSentinel(s string) bool {
	return completeRe.MatchString(strings.TrimSpace(s))
}

// Typed renders a stored answer the way a learner would type it: no dollar
// signs, \frac{a}{b} as a/b, \sqrt{a} as sqrt(a), no \text{} and no braces.
// Spacing is kept.
func Typed(value string) string {
	s := strings.ReplaceAll(value, "$", "")
	s = fracRe.ReplaceAllString(s, "$1/$2")
	s = sqrtRe.ReplaceAllString(s, "sqrt($1)")
	s = strings.ReplaceAll(s, `\cdot`, "*")
	s = textRe.ReplaceAllString(s, "")
	s = strings.NewReplacer(`\`, "", "{", "", "}", "").Replace(s)
	s = stripStatusPrefix(s)
	return strings.TrimSpace(s)
}

// cases.Caser is stateful, so a fresh one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
