package extract

import "testing"

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct {
		heading string
		want    string
		ok      bool
	}{
		{"Стаття 130. Порушення", "130", true},
		{"Стаття 130-1. Додаткова", "130-1", true},
		{"Стаття 130 - 1. Пробіли", "130-1", true},
		{"стаття 7", "7", true},
		{"СТАТТЯ 8.", "8", true},
		{"Стаття 9.", "9", true},
		{"Стаття 130а. Літерна", "", false},
		{"Стаття 12b.", "", false},
		{"Стаття 1-2-3.", "", false},
		{"Стаття -1.", "", false},
		{"Стаття .", "", false},
		{"Глава 5.", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeIdentifier(tc.heading, DefaultRules())
		if ok != tc.ok || got != tc.want {
			t.Fatalf("NormalizeIdentifier(%q) = %q, %v; want %q, %v", tc.heading, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeIdentifier_StripsPunctuation(t *testing.T) {
	got, ok := NormalizeIdentifier("Стаття *45*.", DefaultRules())
	if !ok || got != "45" {
		t.Fatalf("expected 45, got %q (%v)", got, ok)
	}
}
