package pattern

import "strings"

// TranslateGlob converts a glob pattern into an anchored regular
// expression source string. The mapping is total: every input produces
// exactly one output, with unterminated character classes treated as
// literal brackets.
func TranslateGlob(glob string) string {
	var b strings.Builder
	b.WriteString(`(?s)^(?:`)

	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				b.WriteString(`.*`)
				i++
			} else {
				b.WriteString(`[^/]*`)
			}
		case '?':
			b.WriteString(`[^/]`)
		case '[':
			j := i + 1
			if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				// a leading ] is a class member, not the terminator
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				b.WriteString(`\[`)
				continue
			}
			b.WriteByte('[')
			if runes[i+1] == '!' {
				b.WriteByte('^')
				b.WriteString(escapeClass(runes[i+2 : j]))
			} else {
				b.WriteString(escapeClass(runes[i+1 : j]))
			}
			b.WriteByte(']')
			i = j
		default:
			b.WriteString(escapeLiteral(c))
		}
	}

	b.WriteString(`)$`)
	return b.String()
}

// escapeClass sanitizes the body of a character class, leaving ranges
// intact but defusing regex metacharacters that glob classes treat as
// literals.
func escapeClass(body []rune) string {
	var b strings.Builder
	for _, c := range body {
		switch c {
		case '\\', '[', ']':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func escapeLiteral(c rune) string {
	switch c {
	case '.', '+', '(', ')', '|', '^', '$', '{', '}', '\\', ']':
		return `\` + string(c)
	default:
		return string(c)
	}
}
