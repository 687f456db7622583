package signature

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cartavis/carta-go/core/validation"
)

var (
	objMarkup  = regexp.MustCompile(":obj:`(.*?)`")
	codeMarkup = regexp.MustCompile("``(.*?)``")
	preserved  = regexp.MustCompile("(:obj:`.+?`|``.+?``)")
	italicise  = regexp.MustCompile(`^([\s.,]*)(.+?)([\s.,]*)$`)
	punctOnly  = regexp.MustCompile(`^[\s.,]*$`)
)

// StripMarkup removes :obj:`...` and ``...`` markup, keeping the enclosed
// text.
func StripMarkup(s string) string {
	s = objMarkup.ReplaceAllString(s, "$1")
	return codeMarkup.ReplaceAllString(s, "$1")
}

// FixDescription italicises the plain-text runs of a description that also
// contains markup, so that documentation renderers do not mangle it. A
// description without markup is returned unchanged.
func FixDescription(s string) string {
	locs := preserved.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	emit := func(plain string) {
		if punctOnly.MatchString(plain) {
			b.WriteString(plain)
			return
		}
		b.WriteString(italicise.ReplaceAllString(plain, "$1*$2*$3"))
	}
	for _, loc := range locs {
		emit(s[last:loc[0]])
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	emit(s[last:])
	return b.String()
}

// RenderDoc replaces {0}, {1}, ... in template with the fixed descriptions
// of the corresponding descriptors. {{ and }} produce literal braces.
func RenderDoc(template string, params []validation.Parameter) (string, error) {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at offset %d", i)
			}
			n, err := strconv.Atoi(template[i+1 : i+end])
			if err != nil {
				return "", fmt.Errorf("invalid placeholder %q", template[i:i+end+1])
			}
			if n < 0 || n >= len(params) {
				return "", fmt.Errorf("placeholder {%d} out of range: %d parameters", n, len(params))
			}
			b.WriteString(FixDescription(params[n].Description()))
			i += end
		case c == '}':
			return "", fmt.Errorf("single '}' at offset %d", i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
