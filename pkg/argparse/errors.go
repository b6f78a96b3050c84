package argparse

import "fmt"

// ErrorKind classifies parse and registration failures.
type ErrorKind int

const (
	KindPositional ErrorKind = iota + 1
	KindDuplicateArgument
	KindOptionalNoValue
	KindConvertArg
	KindInvalidOSSep
	KindRawVectorOutOfRange
	KindInvalidSpec
)

func (k ErrorKind) String() string {
	switch k {
	case KindPositional:
		return "positional error"
	case KindDuplicateArgument:
		return "duplicate argument"
	case KindOptionalNoValue:
		return "optional provided with no value"
	case KindConvertArg:
		return "convert error"
	case KindInvalidOSSep:
		return "invalid path separator"
	case KindRawVectorOutOfRange:
		return "raw vector out of range"
	case KindInvalidSpec:
		return "invalid argument spec"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every failing registration or parse. Arg names the
// argument involved, if any.
type Error struct {
	Kind ErrorKind
	Arg  string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrPositional          = &Error{Kind: KindPositional}
	ErrDuplicateArgument   = &Error{Kind: KindDuplicateArgument}
	ErrOptionalNoValue     = &Error{Kind: KindOptionalNoValue}
	ErrConvertArg          = &Error{Kind: KindConvertArg}
	ErrInvalidOSSep        = &Error{Kind: KindInvalidOSSep}
	ErrRawVectorOutOfRange = &Error{Kind: KindRawVectorOutOfRange}
	ErrInvalidSpec         = &Error{Kind: KindInvalidSpec}
)

func newError(kind ErrorKind, arg, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Arg: arg, Msg: fmt.Sprintf(format, args...)}
}
