package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorsSkipsDefault(t *testing.T) {
	cs := Colors()
	if len(cs) != int(ColorGray) {
		t.Fatalf("len(Colors()) = %d, want %d", len(cs), ColorGray)
	}
	for _, c := range cs {
		if c == ColorDefault {
			t.Fatal("Colors() includes the default colour")
		}
	}
}
