package tinyre

import (
	"errors"
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"class", "[a-z0-9]+", false},
		{"alternation", "foo|bar", false},
		{"repetition", "a+", false},
		{"groups", "(a)(?:b)", false},
		{"empty", "", false},
		{"unterminated group", "(", true},
		{"empty class", "[]", true},
		{"bad group", "(?i)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && re == nil {
				t.Error("Compile() returned nil")
			}
		})
	}
}

func TestMustCompile(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile() did not panic on an invalid pattern")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value %T, want string", r)
		}
		if !strings.HasPrefix(msg, "regexp: Compile(`[a`): ") {
			t.Errorf("panic message = %q", msg)
		}
	}()

	MustCompile("[a")
}

func TestRegex_Match(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"hello", "hello", true},
		{"hello", "hello world", false},
		{"h.llo", "hallo", true},
		{"colou?r", "color", true},
		{"colou?r", "colour", true},
		{"[0-9]+-[0-9]+", "123-456", true},
		{"[0-9]+-[0-9]+", "123-", false},
		{"(?:foo|bar)+baz", "foobarbaz", true},
		{"^$", "", true},
		{"^$", "x", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := re.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackageLevelMatch(t *testing.T) {
	got, err := MatchString("[a-z]+", "hello")
	if err != nil || !got {
		t.Errorf("MatchString() = %v, %v; want true, nil", got, err)
	}

	got, err = Match("[a-z]+", []byte("Hello"))
	if err != nil || got {
		t.Errorf("Match() = %v, %v; want false, nil", got, err)
	}

	if _, err := MatchString("(a", "a"); !errors.Is(err, ErrUnterminatedGroup) {
		t.Errorf("MatchString() error = %v, want ErrUnterminatedGroup", err)
	}
	if _, err := Match("[z-a]", nil); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Match() error = %v, want ErrInvalidRange", err)
	}
}

func TestRegex_MatchLength(t *testing.T) {
	re := MustCompile("[a-z]+")
	buf := []byte("abc123")

	if !re.MatchLength(buf, 3) {
		t.Error("MatchLength(buf, 3) = false, want true")
	}
	if re.MatchLength(buf, 4) {
		t.Error("MatchLength(buf, 4) = true, want false")
	}
}

func TestRegex_Accessors(t *testing.T) {
	re := MustCompile("(a)(?:b)(c(d))")

	if got := re.NumSubexp(); got != 3 {
		t.Errorf("NumSubexp() = %d, want 3", got)
	}
	if got := re.String(); got != "(a)(?:b)(c(d))" {
		t.Errorf("String() = %q", got)
	}
	if re.Program().Len() == 0 {
		t.Error("Program() is empty")
	}
}

func TestCompileWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxNodes = 4

	if _, err := CompileWithConfig("abc", config); err != nil {
		t.Errorf("abc under 4 nodes: %v", err)
	}

	_, err := CompileWithConfig("abcd", config)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("abcd under 4 nodes: err = %v, want ErrOutOfMemory", err)
	}
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Kind != KindOutOfMemory {
		t.Errorf("err = %#v, want *CompileError of KindOutOfMemory", err)
	}
}

func TestCompileWithConfig_SmallMaxNodes(t *testing.T) {
	// Lowering only MaxNodes below the default capacity must not be
	// rejected as a config error.
	for _, limit := range []int{1, 2, 8, 15} {
		config := DefaultConfig()
		config.MaxNodes = limit

		re, err := CompileWithConfig("a", config)
		switch {
		case limit < 2:
			if !errors.Is(err, ErrOutOfMemory) {
				t.Errorf("MaxNodes=%d: err = %v, want ErrOutOfMemory", limit, err)
			}
		case err != nil:
			t.Errorf("MaxNodes=%d: %v", limit, err)
		case !re.MatchString("a"):
			t.Errorf("MaxNodes=%d: does not match \"a\"", limit)
		}
	}
}

func TestCompileWithConfig_Invalid(t *testing.T) {
	config := DefaultConfig()
	config.MaxNodes = 0

	_, err := CompileWithConfig("a", config)
	if err == nil {
		t.Fatal("expected config error")
	}
	if !strings.HasPrefix(err.Error(), "regexp: invalid config: MaxNodes") {
		t.Errorf("error = %q", err)
	}
}

func TestQuoteMeta(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{"1+1=2?", `1\+1=2\?`},
		{"[a-z]*", `\[a-z\]\*`},
		{`a\b`, `a\\b`},
		{"^(x|y)$.", `\^\(x\|y\)\$\.`},
	}

	for _, tt := range tests {
		if got := QuoteMeta(tt.input); got != tt.want {
			t.Errorf("QuoteMeta(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestQuoteMeta_StopsAtNUL(t *testing.T) {
	// A pattern ends at its first NUL byte, quoted or not.
	re := MustCompile(QuoteMeta("a\x00b"))
	if re.MatchString("a\x00b") {
		t.Error("quoted pattern matched past the NUL byte")
	}
	if !re.MatchString("a") {
		t.Error("quoted pattern should match the text before the NUL byte")
	}
}

func TestQuoteMeta_MatchesLiteral(t *testing.T) {
	for _, s := range []string{"1+1=2?", "a.b*c", "(x|y)", "[]^$", `C:\dir`} {
		re, err := Compile(QuoteMeta(s))
		if err != nil {
			t.Fatalf("Compile(QuoteMeta(%q)): %v", s, err)
		}
		if !re.MatchString(s) {
			t.Errorf("QuoteMeta(%q) = %q does not match the input", s, QuoteMeta(s))
		}
	}
}
