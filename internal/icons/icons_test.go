package icons

import "testing"

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     int
		expected string
	}{
		{code: 0, expected: "Clear"},
		{code: 2, expected: "Partly cloudy"},
		{code: 48, expected: "Fog"},
		{code: 55, expected: "Heavy drizzle"},
		{code: 65, expected: "Heavy rain"},
		{code: 75, expected: "Heavy snow"},
		{code: 82, expected: "Showers"},
		{code: 99, expected: "Thunderstorm"},
		{code: 42, expected: "—"},
		{code: -1, expected: "—"},
	}

	for _, tt := range tests {
		if got := Describe(tt.code); got != tt.expected {
			t.Errorf("Describe(%d) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestForCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     int
		expected Kind
	}{
		{code: 0, expected: KindSun},
		{code: 1, expected: KindSun},
		{code: 2, expected: KindCloud},
		{code: 3, expected: KindCloud},
		{code: 45, expected: KindFog},
		{code: 48, expected: KindFog},
		{code: 51, expected: KindRain},
		{code: 67, expected: KindRain},
		{code: 71, expected: KindSnow},
		{code: 77, expected: KindSnow},
		{code: 80, expected: KindRain},
		{code: 82, expected: KindRain},
		{code: 95, expected: KindStorm},
		{code: 99, expected: KindStorm},
		{code: 30, expected: KindCloud}, // unmapped falls back to cloud
	}

	for _, tt := range tests {
		if got := ForCode(tt.code); got != tt.expected {
			t.Errorf("ForCode(%d) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestWeatherNeverEmpty(t *testing.T) {
	t.Parallel()

	for code := range 100 {
		if Weather(code) == "" {
			t.Errorf("Weather(%d) returned empty glyph", code)
		}
	}
}
