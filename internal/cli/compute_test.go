package cli

import "testing"

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output strips input ext", "", "points.txt", "points"},
		{"no output json input", "", "data/points.json", "data/points"},
		{"no output extensionless input", "", "points", "points"},
		{"output with format ext stripped", "hull.svg", "points.txt", "hull"},
		{"output with txt ext stripped", "hull.txt", "points.txt", "hull"},
		{"output with unknown ext kept", "hull.out", "points.txt", "hull.out"},
		{"bare output kept", "result", "points.txt", "result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.input)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}
