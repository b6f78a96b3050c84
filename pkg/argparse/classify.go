package argparse

// classifier states
const (
	stStart = iota
	stDash1
	stDash2
	stIdent  // inside the identifier, last byte alphanumeric
	stHyphen // inside the identifier, last byte '-'
	stValue  // after '=', anything goes
)

// IsOptionalToken reports whether token has the lexical form of an optional
// argument: one or two leading dashes, an identifier of ASCII letters and
// digits with single interior hyphens, then optionally '=' and a value.
//
//	-v  --verbose  --number-int=4  --out=''  --name="a b"
func IsOptionalToken(token string) bool {
	state := stStart
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch state {
		case stStart:
			if c != '-' {
				return false
			}
			state = stDash1
		case stDash1, stDash2:
			switch {
			case isAlnum(c):
				state = stIdent
			case c == '-' && state == stDash1:
				state = stDash2
			default:
				return false
			}
		case stIdent:
			switch {
			case isAlnum(c):
			case c == '-':
				state = stHyphen
			case c == '=':
				state = stValue
			default:
				return false
			}
		case stHyphen:
			if !isAlnum(c) {
				return false
			}
			state = stIdent
		case stValue:
			return true
		}
	}
	return state == stIdent || state == stValue
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
