package envx

import (
	"os"
	"testing"
)

func TestExpander_Posix(t *testing.T) {
	e := Expander{
		Lookup:  MapLookup(map[string]string{"HOME": "/home/me", "PROJ": "work", "EMPTY": ""}, false),
		Windows: false,
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no references", "/usr/local/bin", "/usr/local/bin"},
		{"dollar name", "$HOME/.config", "/home/me/.config"},
		{"braced name", "${HOME}/src/${PROJ}", "/home/me/src/work"},
		{"adjacent text", "$PROJ-dir", "work-dir"},
		{"unset left literal", "$NOPE/x", "$NOPE/x"},
		{"unset braced left literal", "${NOPE}/x", "${NOPE}/x"},
		{"empty value", "a$EMPTY/b", "a/b"},
		{"case sensitive", "$home/x", "$home/x"},
		{"percent ignored", "%HOME%/x", "%HOME%/x"},
		{"lone dollar", "cost$", "cost$"},
		{"empty braces", "${}", "${}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Expand(tt.in); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpander_Windows(t *testing.T) {
	e := Expander{
		Lookup:  MapLookup(map[string]string{"USERPROFILE": `C:\Users\me`, "APPDATA": `C:\Users\me\AppData\Roaming`}, true),
		Windows: true,
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"percent name", `%USERPROFILE%\x`, `C:\Users\me\x`},
		{"percent name any case", `%userprofile%\AppData\Local\nvim`, `C:\Users\me\AppData\Local\nvim`},
		{"two references", `%appdata%;%USERPROFILE%`, `C:\Users\me\AppData\Roaming;C:\Users\me`},
		{"dollar also works", `$USERPROFILE\x`, `C:\Users\me\x`},
		{"unset left literal", `%NOPE%\x`, `%NOPE%\x`},
		{"double percent", `100%%`, `100%%`},
		{"unterminated", `%USERPROFILE`, `%USERPROFILE`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Expand(tt.in); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpander_NilLookup(t *testing.T) {
	e := Expander{}
	if got := e.Expand("$HOME"); got != "$HOME" {
		t.Errorf("Expand with nil lookup = %q, want literal", got)
	}
}

func TestHost_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("P_ENVX_TEST", "/from/env")

	if got := Host().Expand("${P_ENVX_TEST}/x"); got != "/from/env/x" {
		t.Errorf("Host().Expand() = %q, want /from/env/x", got)
	}

	if err := os.Setenv("P_ENVX_TEST", "/changed"); err != nil {
		t.Fatalf("Setenv: %v", err)
	}
	if got := Host().Expand("$P_ENVX_TEST"); got != "/changed" {
		t.Errorf("Host().Expand() after change = %q, want /changed", got)
	}
}
