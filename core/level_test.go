package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelAssertions, "ASSERTIONS"},
		{LevelReports, "REPORTS"},
		{LevelCallTracing, "CALLTRACING"},
		{Level(7), "LEVEL(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Enables(t *testing.T) {
	for l := LevelAssertions - 1; l <= LevelCallTracing+1; l++ {
		for req := LevelAssertions; req <= LevelCallTracing; req++ {
			if got, want := l.Enables(req), l >= req; got != want {
				t.Errorf("Level(%d).Enables(%d) = %v, want %v", l, req, got, want)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"assertions", LevelAssertions, true},
		{"Reports", LevelReports, true},
		{" calltracing ", LevelCallTracing, true},
		{"trace", LevelCallTracing, true},
		{"0", LevelAssertions, true},
		{"5", Level(5), true},
		{"bogus", LevelCallTracing, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
