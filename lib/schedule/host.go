package schedule

import (
	"regexp"

	"github.com/catsplus/radiograb-sub001/lib/textutil"
)

// host patterns are tried in order; the first bounded match wins.
var hostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)hosted by ([A-Za-z][A-Za-z .'-]{1,48}[A-Za-z])`),
	regexp.MustCompile(`(?i)presented by ([A-Za-z][A-Za-z .'-]{1,48}[A-Za-z])`),
	regexp.MustCompile(`(?i)\bwith ([A-Z][A-Za-z .'-]{1,48}[A-Za-z])`),
}

// ExtractHost pulls a DJ/presenter name out of free text via the
// "hosted by X" family of patterns. Matches are bounded to 3-50
// characters to avoid swallowing whole sentences.
func ExtractHost(text string) string {
	for _, p := range hostPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		host := textutil.CollapseWhitespace(m[1])
		if n := len([]rune(host)); n < 3 || n > 50 {
			continue
		}
		return host
	}
	return ""
}
