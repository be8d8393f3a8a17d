package engine

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		flag string
		want Action
	}{
		{"-e", Action{Kind: ActionOpenFileManager}},
		{"-E", Action{Kind: ActionOpenFileManager}},
		{"-code", Action{Kind: ActionOpenEditor}},
		{"-CODE", Action{Kind: ActionOpenEditor}},
		{"-t", Action{Kind: ActionOpenTerminal}},
		{"-delete", Action{Kind: ActionDelete}},
		{"-Delete", Action{Kind: ActionDelete}},
		{"--print-path", Action{Kind: ActionPrintPath}},
		{"-x", Action{Kind: ActionUnknown, Raw: "-x"}},
		{"-OPEN", Action{Kind: ActionUnknown, Raw: "-open"}},
		{"", Action{Kind: ActionUnknown, Raw: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			if got := ParseAction(tt.flag); got != tt.want {
				t.Errorf("ParseAction(%q) = %+v, want %+v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestAction_StringRoundTrip(t *testing.T) {
	for _, flag := range KnownFlags {
		if got := ParseAction(flag).String(); got != flag {
			t.Errorf("ParseAction(%q).String() = %q", flag, got)
		}
	}
	if NoAction.String() != "" {
		t.Errorf("NoAction.String() = %q, want empty", NoAction.String())
	}
	if got := ParseAction("-Weird").String(); got != "-weird" {
		t.Errorf("unknown action String() = %q, want -weird", got)
	}
}
