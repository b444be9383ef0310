package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Foo Bar", "foo-bar"},
		{"whitespace runs collapse", "  Hello \t  World  ", "hello-world"},
		{"punctuation stripped", "Go, Rust & Zig!", "go-rust--zig"},
		{"inner hyphens kept", "a--b", "a--b"},
		{"short base gets digest", "ab", "ab187ef4436122d1cc"},
		{"short base from distinct source", "ab!", "abd807626142f1282e"},
		{"non-latin title falls back to prefix", "卷首语", "p-20b8cb234a9dbb4a"},
		{"hyphen-only base falls back to prefix", "技术-周刊", "p-9e212fbda6afb1f6"},
		{"digit-leading base falls back to prefix", "123 go", "p-ef09729367d8d040"},
		{"long column base kept", "column-ab", "column-ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"Foo Bar", "ab", "周刊", ""} {
		first := Make(input)
		for i := 0; i < 3; i++ {
			if got := Make(input); got != first {
				t.Fatalf("Make(%q) not stable: %q then %q", input, first, got)
			}
		}
	}
}

func TestMake_ShortBasesStayDistinct(t *testing.T) {
	t.Parallel()

	a, b := Make("AB"), Make("ab?")
	if Base("AB") != "ab" || Base("ab?") != "ab" {
		t.Fatalf("precondition: both inputs should reduce to base %q", "ab")
	}
	if a == b {
		t.Errorf("Make(%q) and Make(%q) collide: %q", "AB", "ab?", a)
	}
	for _, id := range []string{a, b} {
		if !IsValid(id) {
			t.Errorf("Make produced invalid identifier %q", id)
		}
	}
}

func TestMake_AlwaysValid(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "-", "---", "42", "技术", "技术-Intro.md", "Ünïcödé", "x", "Σ sigma", "tab\there"}
	for _, input := range inputs {
		got := Make(input)
		if !IsValid(got) {
			t.Errorf("Make(%q) = %q, not a valid identifier", input, got)
		}
	}
}

func TestHash(t *testing.T) {
	t.Parallel()

	got := Hash("ab")
	if len(got) != HashLength {
		t.Fatalf("Hash length = %d, want %d", len(got), HashLength)
	}
	if got != "187ef4436122d1cc" {
		t.Errorf("Hash(%q) = %q", "ab", got)
	}
}

func TestDisambiguated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"技术-Cover", "cover" + Hash("技术-Cover")},
		{"Style", "style" + Hash("Style")},
		{"42", FallbackPrefix + Hash("42")},
		{"column-Tech", "column-tech" + Hash("Tech")},
	}

	for _, tt := range tests {
		got := Disambiguated(tt.in)
		if got != tt.want {
			t.Errorf("Disambiguated(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got == Base(tt.in) {
			t.Errorf("Disambiguated(%q) kept the bare base", tt.in)
		}
		if !IsValid(got) {
			t.Errorf("Disambiguated(%q) = %q, not a valid identifier", tt.in, got)
		}
	}
}

func TestDisambiguated_MatchesMakeForShortBases(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"ab", "x-y", "", "技术"} {
		if got, want := Disambiguated(in), Make(in); got != want {
			t.Errorf("Disambiguated(%q) = %q, Make = %q", in, got, want)
		}
	}
}
