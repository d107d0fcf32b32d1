package filter

import (
	"fmt"
	"slices"
	"strings"
)

// maxClassRunes bounds how many characters a bracket expression may expand
// to. Larger classes are only accepted as a single range.
const maxClassRunes = 4096

type span struct{ lo, hi rune }

// charClass is a parsed bracket expression.
type charClass struct {
	negate bool
	spans  []span
}

// ASCII members of the POSIX classes accepted inside brackets.
var posixClasses = map[string][]span{
	"alnum":  {{'0', '9'}, {'A', 'Z'}, {'a', 'z'}},
	"alpha":  {{'A', 'Z'}, {'a', 'z'}},
	"blank":  {{' ', ' '}, {'\t', '\t'}},
	"cntrl":  {{0x01, 0x1f}, {0x7f, 0x7f}},
	"digit":  {{'0', '9'}},
	"graph":  {{'!', '~'}},
	"lower":  {{'a', 'z'}},
	"print":  {{' ', '~'}},
	"punct":  {{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}},
	"space":  {{' ', ' '}, {'\t', '\r'}},
	"upper":  {{'A', 'Z'}},
	"xdigit": {{'0', '9'}, {'A', 'F'}, {'a', 'f'}},
}

// translatePattern rewrites a shell pattern, as understood by fnmatch(3) with
// no flags, into gobwas/glob syntax. Braces and commas are literal in a shell
// pattern, an unterminated '[' is literal, and a ']' first in a class is a
// member. gobwas accepts a single range or a single run of characters per
// class, so classes are expanded to their members.
//
// never is set when the pattern contains a class no character can match.
func translatePattern(pattern string) (out string, never bool, err error) {
	p := []rune(pattern)
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '*', '?':
			b.WriteRune(c)
		case '\\':
			if i+1 < len(p) {
				i++
			}
			writeLiteral(&b, p[i])
		case '[':
			cls, end, ok, err := parseClass(p, i)
			if err != nil {
				return "", false, err
			}
			if !ok {
				writeLiteral(&b, '[')
				continue
			}
			s, empty, err := cls.gobwas()
			if err != nil {
				return "", false, err
			}
			never = never || empty
			b.WriteString(s)
			i = end
		default:
			writeLiteral(&b, c)
		}
	}
	return b.String(), never, nil
}

func writeLiteral(b *strings.Builder, r rune) {
	if strings.ContainsRune(`*?[]{},\`, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

// parseClass parses the bracket expression opening at p[start]. It returns
// the index of the closing ']', or ok == false if there is none.
func parseClass(p []rune, start int) (cls charClass, end int, ok bool, err error) {
	i := start + 1
	if i < len(p) && (p[i] == '!' || p[i] == '^') {
		cls.negate = true
		i++
	}
	for first := true; i < len(p); first = false {
		c := p[i]
		if c == ']' && !first {
			return cls, i, true, nil
		}
		if c == '[' && i+1 < len(p) && p[i+1] == ':' {
			rest := string(p[i+2:])
			if n := strings.Index(rest, ":]"); n >= 0 {
				name := rest[:n]
				members, known := posixClasses[name]
				if !known {
					return cls, 0, false, fmt.Errorf("unknown character class [:%s:]", name)
				}
				cls.spans = append(cls.spans, members...)
				i += 2 + len([]rune(name)) + 2
				continue
			}
		}
		if c == '\\' && i+1 < len(p) {
			i++
			c = p[i]
		}
		i++
		if i+1 < len(p) && p[i] == '-' && p[i+1] != ']' {
			hi := p[i+1]
			i += 2
			if hi == '\\' && i < len(p) {
				hi = p[i]
				i++
			}
			cls.spans = append(cls.spans, span{c, hi})
			continue
		}
		cls.spans = append(cls.spans, span{c, c})
	}
	return cls, 0, false, nil
}

// gobwas renders the class in gobwas syntax. empty reports a class that
// matches nothing.
func (c charClass) gobwas() (s string, empty bool, err error) {
	var spans []span
	total := 0
	for _, sp := range c.spans {
		// NUL never occurs in a file name and ends gobwas input.
		sp.lo = max(sp.lo, 1)
		if sp.hi < sp.lo {
			continue
		}
		spans = append(spans, sp)
		total += int(sp.hi-sp.lo) + 1
	}
	switch {
	case total == 0 && c.negate:
		return "?", false, nil
	case total == 0:
		return "", true, nil
	case total > maxClassRunes:
		if len(spans) != 1 || (spans[0].lo == '!' && !c.negate) {
			return "", false, fmt.Errorf("character class too large")
		}
		if c.negate {
			return fmt.Sprintf("[!%c-%c]", spans[0].lo, spans[0].hi), false, nil
		}
		return fmt.Sprintf("[%c-%c]", spans[0].lo, spans[0].hi), false, nil
	}

	var members []rune
	for _, sp := range spans {
		for r := sp.lo; r <= sp.hi; r++ {
			members = append(members, r)
		}
	}
	slices.Sort(members)
	members = slices.Compact(members)

	var b strings.Builder
	b.WriteByte('[')
	if c.negate {
		b.WriteByte('!')
	}
	// Every member is escaped except '-', which goes last and bare: gobwas
	// would read a leading `\-` as a range.
	dash := false
	for _, r := range members {
		if r == '-' {
			dash = true
			continue
		}
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	if dash {
		b.WriteByte('-')
	}
	b.WriteByte(']')
	return b.String(), false, nil
}
