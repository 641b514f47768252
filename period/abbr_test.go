package period

import "testing"

func TestFormatAbbr(t *testing.T) {
	cases := []struct {
		template    string
		localOffset int
		letter      string
		want        string
	}{
		{"CE%sT", 0, "", "CET"},
		{"CE%sT", 3600, "S", "CEST"},
		{"EST/EDT", 0, "", "EST"},
		{"EST/EDT", 3600, "", "EDT"},
		{"-00", 0, "", "-00"},
	}
	for _, c := range cases {
		got := formatAbbr(c.template, c.localOffset, c.letter)
		if got != c.want {
			t.Errorf("formatAbbr(%q, %d, %q) = %q, want %q", c.template, c.localOffset, c.letter, got, c.want)
		}
	}
}
