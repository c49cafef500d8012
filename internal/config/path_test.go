package config

import (
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/verdant")
	t.Setenv("VERDANT_DATA", "/var/lib/verdant")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "bare tilde", path: "~", want: "/home/verdant"},
		{name: "tilde prefix", path: "~/.local/share/verdant", want: filepath.Join("/home/verdant", ".local/share/verdant")},
		{name: "env var", path: "$VERDANT_DATA/verdant.db", want: "/var/lib/verdant/verdant.db"},
		{name: "plain path untouched", path: "/tmp/verdant.db", want: "/tmp/verdant.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.path); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
