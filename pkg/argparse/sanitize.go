package argparse

import "strings"

// Sanitize turns raw arguments (without the program name) into canonical
// tokens. Optional tokens of the form name=value are split in two, then every
// token wrapped in single quotes loses one quote on each side. capHint only
// sizes the initial allocation.
func Sanitize(raw []string, capHint int) []string {
	if capHint < len(raw) {
		capHint = len(raw)
	}
	out := make([]string, 0, capHint)
	for _, tok := range raw {
		if IsOptionalToken(tok) {
			if name, value, ok := strings.Cut(tok, "="); ok {
				out = append(out, name, value)
				continue
			}
		}
		out = append(out, tok)
	}
	for i, tok := range out {
		out[i] = unquote(tok)
	}
	return out
}

func unquote(tok string) string {
	if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		return tok[1 : len(tok)-1]
	}
	return tok
}
