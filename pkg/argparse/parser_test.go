package argparse

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParser(t *testing.T, specs ...ArgumentSpec) *Parser {
	t.Helper()
	p := New("test parser", "prog")
	for _, s := range specs {
		require.NoError(t, p.Register(s))
	}
	return p
}

func pos(name string, typ ArgType) ArgumentSpec {
	return ArgumentSpec{Name: name, Type: typ, Importance: Positional}
}

func opt(name string, typ ArgType) ArgumentSpec {
	return ArgumentSpec{Name: name, Type: typ, Importance: Optional}
}

func TestParsePositionalAndFlag(t *testing.T) {
	p := mustParser(t, pos("name", String), opt("verbose", StoreTrue))

	res, err := p.Parse([]string{"prog", "hello", "--verbose"})
	require.NoError(t, err)

	name, ok := res.String("name")
	require.True(t, ok)
	require.Equal(t, "hello", name)

	verbose, ok := res.Bool("verbose")
	require.True(t, ok)
	require.True(t, verbose)
}

func TestParseOptionalInt(t *testing.T) {
	p := mustParser(t, opt("count", Int))

	res, err := p.Parse([]string{"prog", "--count=42"})
	require.NoError(t, err)
	n, ok := res.Int("count")
	require.True(t, ok)
	require.Equal(t, 42, n)

	_, err = p.Parse([]string{"prog", "--count", "abc"})
	require.ErrorIs(t, err, ErrConvertArg)

	_, err = p.Parse([]string{"prog", "--count"})
	require.ErrorIs(t, err, ErrOptionalNoValue)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []ArgumentSpec
		argv  []string
		want  *Error
		arg   string
	}{
		{
			name:  "too few positional tokens",
			specs: []ArgumentSpec{pos("a", String), pos("b", String)},
			argv:  []string{"prog", "one"},
			want:  ErrPositional,
		},
		{
			name:  "positional looks like an optional",
			specs: []ArgumentSpec{pos("a", String), opt("v", StoreTrue)},
			argv:  []string{"prog", "-v", "file"},
			want:  ErrPositional,
			arg:   "a",
		},
		{
			name:  "negative number as positional",
			specs: []ArgumentSpec{pos("n", Int)},
			argv:  []string{"prog", "-5"},
			want:  ErrPositional,
			arg:   "n",
		},
		{
			name:  "trailing value optional",
			specs: []ArgumentSpec{opt("output", String), opt("v", StoreTrue)},
			argv:  []string{"prog", "-v", "--output"},
			want:  ErrOptionalNoValue,
			arg:   "output",
		},
		{
			name:  "signed int",
			specs: []ArgumentSpec{opt("n", Int)},
			argv:  []string{"prog", "--n", "+3"},
			want:  ErrConvertArg,
			arg:   "n",
		},
		{
			name:  "int overflow",
			specs: []ArgumentSpec{opt("n", Int)},
			argv:  []string{"prog", "--n=99999999999999999999999"},
			want:  ErrConvertArg,
			arg:   "n",
		},
		{
			name:  "float with exponent",
			specs: []ArgumentSpec{opt("f", Float)},
			argv:  []string{"prog", "--f=1e3"},
			want:  ErrConvertArg,
			arg:   "f",
		},
		{
			name:  "float without fraction digits",
			specs: []ArgumentSpec{opt("f", Float)},
			argv:  []string{"prog", "--f=1."},
			want:  ErrConvertArg,
			arg:   "f",
		},
		{
			name:  "double with any separator",
			specs: []ArgumentSpec{opt("d", Double)},
			argv:  []string{"prog", "--d", "1x5"},
			want:  ErrConvertArg,
			arg:   "d",
		},
		{
			name:  "empty int",
			specs: []ArgumentSpec{opt("n", Int)},
			argv:  []string{"prog", "--n="},
			want:  ErrConvertArg,
			arg:   "n",
		},
		{
			name: "empty argv",
			argv: []string{},
			want: ErrRawVectorOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParser(t, tt.specs...)
			res, err := p.Parse(tt.argv)
			require.Nil(t, res)
			require.ErrorIs(t, err, tt.want)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.arg, perr.Arg)
			require.NotEmpty(t, perr.Error())
			require.Nil(t, p.Result())
		})
	}
}

func TestParseFlagDefaults(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		on   bool
		off  bool
	}{
		{name: "absent", argv: []string{"prog"}, on: false, off: true},
		{name: "store true present", argv: []string{"prog", "--on"}, on: true, off: true},
		{name: "store false present", argv: []string{"prog", "-off"}, on: false, off: false},
		{name: "both present", argv: []string{"prog", "-off", "--on", "--unknown"}, on: true, off: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParser(t, opt("on", StoreTrue), opt("off", StoreFalse), opt("other", String))
			_, err := p.Parse(tt.argv)
			require.NoError(t, err)

			on, ok := p.GetBool("on")
			require.True(t, ok)
			require.Equal(t, tt.on, on)

			off, ok := p.GetBool("off")
			require.True(t, ok)
			require.Equal(t, tt.off, off)

			_, ok = p.GetString("other")
			require.False(t, ok)
		})
	}
}

func TestParseDropPositional(t *testing.T) {
	p := mustParser(t,
		pos("input", String),
		pos("output", String),
		ArgumentSpec{Name: "version", Type: StoreTrue, Importance: Optional, Behavior: DropPositionalCheck},
	)

	res, err := p.Parse([]string{"prog", "--version"})
	require.NoError(t, err)
	require.True(t, p.DroppedPositional())
	require.False(t, res.Has("input"))

	// Enough tokens for every slot, still nothing is bound.
	res, err = p.Parse([]string{"prog", "a", "b", "--version"})
	require.NoError(t, err)
	require.True(t, p.DroppedPositional())
	require.False(t, res.Has("input"))
	require.False(t, res.Has("output"))

	res, err = p.Parse([]string{"prog", "a", "b"})
	require.NoError(t, err)
	require.False(t, p.DroppedPositional())
	in, _ := res.String("input")
	out, _ := res.String("output")
	require.Equal(t, "a", in)
	require.Equal(t, "b", out)
}

func TestParseDropPositionalValueOptional(t *testing.T) {
	p := mustParser(t,
		pos("input", String),
		ArgumentSpec{Name: "config", Type: String, Importance: Optional, Behavior: DropPositionalCheck},
	)
	res, err := p.Parse([]string{"prog", "--config", "-"})
	require.NoError(t, err)
	cfg, ok := res.String("config")
	require.True(t, ok)
	require.Equal(t, "-", cfg)
}

func TestParseUnknownOptionalIgnored(t *testing.T) {
	p := mustParser(t, opt("known", String))
	res, err := p.Parse([]string{"prog", "--unknown", "--known", "x", "--other=1"})
	require.NoError(t, err)
	v, ok := res.String("known")
	require.True(t, ok)
	require.Equal(t, "x", v)
	require.False(t, res.Has("unknown"))
}

func TestParseValueConsumed(t *testing.T) {
	p := mustParser(t, opt("output", String), opt("verbose", StoreTrue))
	res, err := p.Parse([]string{"prog", "--output", "--verbose"})
	require.NoError(t, err)

	out, _ := res.String("output")
	require.Equal(t, "--verbose", out)
	verbose, _ := res.Bool("verbose")
	require.False(t, verbose)
}

func TestParseLastOccurrenceWins(t *testing.T) {
	p := mustParser(t, opt("n", Int))
	res, err := p.Parse([]string{"prog", "--n", "1", "-n=2"})
	require.NoError(t, err)
	n, _ := res.Int("n")
	require.Equal(t, 2, n)
}

func TestParseZeroAndEmptyArePresent(t *testing.T) {
	p := mustParser(t, opt("n", Int), opt("s", String), opt("f", Float), opt("d", Double))
	res, err := p.Parse([]string{"prog", "--n=0", "--s=''", "--f", "0", "--d", "0.0"})
	require.NoError(t, err)

	n, ok := res.Int("n")
	require.True(t, ok)
	require.Zero(t, n)

	s, ok := res.String("s")
	require.True(t, ok)
	require.Empty(t, s)

	f, ok := res.Float("f")
	require.True(t, ok)
	require.Zero(t, f)

	d, ok := res.Double("d")
	require.True(t, ok)
	require.Zero(t, d)

	res, err = p.Parse([]string{"prog"})
	require.NoError(t, err)
	for _, name := range []string{"n", "s", "f", "d"} {
		require.False(t, res.Has(name), name)
	}
}

func TestParseNumericRoundTrip(t *testing.T) {
	p := mustParser(t, opt("i", Int), opt("f", Float), opt("d", Double))

	for _, n := range []int{0, 1, 7, 42, 65535, 2147483647} {
		_, err := p.Parse([]string{"prog", "--i", strconv.Itoa(n)})
		require.NoError(t, err)
		got, ok := p.GetInt("i")
		require.True(t, ok)
		require.Equal(t, n, got)
	}

	for _, s := range []string{"0", "3.5", "12.25", "1000000.125"} {
		_, err := p.Parse([]string{"prog", "-f=" + s, "-d=" + s})
		require.NoError(t, err)

		want64, _ := strconv.ParseFloat(s, 64)
		want32, _ := strconv.ParseFloat(s, 32)

		f, ok := p.GetFloat("f")
		require.True(t, ok)
		require.Equal(t, float32(want32), f)

		d, ok := p.GetDouble("d")
		require.True(t, ok)
		require.Equal(t, want64, d)
	}
}

func TestParseReuse(t *testing.T) {
	p := mustParser(t, pos("file", String), opt("n", Int), opt("v", StoreTrue))

	first, err := p.Parse([]string{"prog", "a.txt", "--n", "3", "-v"})
	require.NoError(t, err)

	second, err := p.Parse([]string{"prog", "b.txt"})
	require.NoError(t, err)

	f, _ := first.String("file")
	require.Equal(t, "a.txt", f)
	n, ok := first.Int("n")
	require.True(t, ok)
	require.Equal(t, 3, n)

	f, _ = second.String("file")
	require.Equal(t, "b.txt", f)
	require.False(t, second.Has("n"))
	v, _ := second.Bool("v")
	require.False(t, v)

	_, err = p.Parse([]string{"prog"})
	require.ErrorIs(t, err, ErrPositional)
	require.Nil(t, p.Result())
	_, ok = p.GetString("file")
	require.False(t, ok)
}

func TestParseQuotedValues(t *testing.T) {
	p := mustParser(t, pos("path", String), opt("name", String))
	res, err := p.Parse([]string{"prog", "'my file'", "--name='John Smith'"})
	require.NoError(t, err)

	path, _ := res.String("path")
	require.Equal(t, "my file", path)
	name, _ := res.String("name")
	require.Equal(t, "John Smith", name)
}

func TestParsePositionalIndexIsAbsolute(t *testing.T) {
	// Positional slots read canonical tokens by index, so optionals must
	// come after them.
	p := mustParser(t, pos("file", String), opt("n", Int))
	_, err := p.Parse([]string{"prog", "--n", "3", "file"})
	require.ErrorIs(t, err, ErrPositional)
}

func TestParseLine(t *testing.T) {
	p := mustParser(t, pos("path", String), opt("title", String), opt("v", StoreTrue))
	res, err := p.ParseLine(`/usr/local/bin/tool "some dir/x" --title "hello world" -v`)
	require.NoError(t, err)

	path, _ := res.String("path")
	require.Equal(t, "some dir/x", path)
	title, _ := res.String("title")
	require.Equal(t, "hello world", title)
	require.Equal(t, "tool", p.ExecName())

	_, err = p.ParseLine(`prog "unterminated`)
	require.Error(t, err)
}

func TestExecName(t *testing.T) {
	tests := []struct {
		name string
		path string
		seps string
		want string
	}{
		{name: "unix", path: "/usr/bin/tool", seps: "/", want: "tool"},
		{name: "windows", path: `C:\tools\tool.exe`, seps: `\`, want: "tool.exe"},
		{name: "windows with unix seps", path: `C:\tools\tool.exe`, seps: "/", want: `C:\tools\tool.exe`},
		{name: "mixed", path: `C:\tools/bin\tool`, seps: DefaultPathSeparators, want: "tool"},
		{name: "bare", path: "tool", seps: DefaultPathSeparators, want: "tool"},
		{name: "trailing separator", path: "dir/", seps: "/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExecName(tt.path, tt.seps); got != tt.want {
				t.Errorf("ExecName(%q, %q) = %q, want %q", tt.path, tt.seps, got, tt.want)
			}
		})
	}
}

func TestParserExecName(t *testing.T) {
	p := New("", "app", WithPathSeparators(`\`))
	require.Equal(t, "app", p.ExecName())

	_, err := p.Parse([]string{`C:\bin\tool.exe`})
	require.NoError(t, err)
	require.Equal(t, "tool.exe", p.ExecName())

	p = New("", "app", WithPathSeparators(""))
	_, err = p.Parse([]string{"/bin/tool"})
	require.ErrorIs(t, err, ErrInvalidOSSep)
}

func TestGetTypeMismatch(t *testing.T) {
	p := mustParser(t, opt("n", Int))
	_, err := p.Parse([]string{"prog", "--n", "5"})
	require.NoError(t, err)

	s := "untouched"
	require.False(t, p.Get("n", &s))
	require.Equal(t, "untouched", s)

	var n int
	require.True(t, p.Get("n", &n))
	require.Equal(t, 5, n)

	var u uint
	require.False(t, p.Get("n", &u))
}

func TestParserIsOptionalToken(t *testing.T) {
	p := mustParser(t, opt("known", String))
	for _, tok := range []string{"--known", "--unknown=1", "-k", "file", "---known", "--"} {
		require.Equal(t, IsOptionalToken(tok), p.IsOptionalToken(tok), tok)
	}
	require.True(t, p.IsOptionalToken("--unknown=1"))
	require.False(t, p.IsOptionalToken("file"))
}

func TestHelpRequested(t *testing.T) {
	require.True(t, HelpRequested([]string{"prog", "x", "--help"}))
	require.True(t, HelpRequested([]string{"prog", "/?"}))
	require.False(t, HelpRequested([]string{"prog", "-h"}))
	require.False(t, HelpRequested(nil))
}
