package token

import "strings"

// SplitKeyEquals splits line on its first '='. Both sides are trimmed and
// one layer of surrounding double quotes is removed from the value.
func SplitKeyEquals(line string) (key, value string, err error) {
	key, raw, err := SplitKeyRaw(line)
	if err != nil {
		return "", "", err
	}
	return key, TrimQuotes(raw), nil
}

// SplitKeyRaw is like SplitKeyEquals but leaves the value as written.
func SplitKeyRaw(line string) (key, raw string, err error) {
	k, v, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", ErrNoEquals
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), nil
}

// TrimQuotes removes one layer of surrounding double quotes.
func TrimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Unquote removes one layer of surrounding double quotes and collapses the
// doubled quotes Praat uses to escape '"' inside strings.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	}
	return s
}

// Quote is the inverse of Unquote.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// BracketContents returns the text of every [...] group in line, left to
// right. Groups do not nest: `z [2] [3]: 5` yields ["2", "3"].
func BracketContents(line string) []string {
	var (
		res []string
		in  bool
		cur strings.Builder
	)
	for _, r := range line {
		switch {
		case r == '[':
			in = true
			cur.Reset()
		case r == ']':
			if in {
				res = append(res, cur.String())
			}
			in = false
		case in:
			cur.WriteRune(r)
		}
	}
	return res
}

// FirstBracket returns the trimmed, quote-stripped content of the first
// [...] group in line.
func FirstBracket(line string) (string, error) {
	i := strings.IndexByte(line, '[')
	if i == -1 {
		return "", ErrNoBracket
	}
	j := strings.IndexByte(line[i+1:], ']')
	if j == -1 {
		return "", ErrUnbalanced
	}
	return TrimQuotes(strings.TrimSpace(line[i+1 : i+1+j])), nil
}

// IsMarker reports whether line is a structural marker such as
// `frames [3]:` or `z [] []:`, rather than a `key = value` line.
func IsMarker(line string) bool {
	return strings.HasSuffix(line, ":") && !strings.Contains(line, "=")
}
