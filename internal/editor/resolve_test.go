package editor

import (
	"errors"
	"testing"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
		err  bool
	}{
		{"all set", map[string]string{"CARGO_EDITOR": "code", "VISUAL": "gvim", "EDITOR": "vim"}, "code", false},
		{"cargo editor only", map[string]string{"CARGO_EDITOR": "code"}, "code", false},
		{"visual and editor", map[string]string{"VISUAL": "gvim", "EDITOR": "vim"}, "gvim", false},
		{"visual only", map[string]string{"VISUAL": "gvim"}, "gvim", false},
		{"editor only", map[string]string{"EDITOR": "vim"}, "vim", false},
		{"cargo editor and editor", map[string]string{"CARGO_EDITOR": "code", "EDITOR": "vim"}, "code", false},
		{"none set", map[string]string{}, "", true},
		{"unrelated set", map[string]string{"PAGER": "less"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(lookupFrom(tt.env))
			if (err != nil) != tt.err {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.err)
			}
			if tt.err && !errors.Is(err, ErrNotConfigured) {
				t.Errorf("Resolve() error = %v, want ErrNotConfigured", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_setButEmpty(t *testing.T) {
	got, err := Resolve(lookupFrom(map[string]string{"CARGO_EDITOR": "", "VISUAL": "gvim", "EDITOR": "vim"}))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != "" {
		t.Errorf("Resolve() = %q, want empty CARGO_EDITOR value", got)
	}
}

func TestResolve_lookupOrder(t *testing.T) {
	var seen []string
	_, _ = Resolve(func(key string) (string, bool) {
		seen = append(seen, key)
		return "", false
	})
	if len(seen) != 3 || seen[0] != "CARGO_EDITOR" || seen[1] != "VISUAL" || seen[2] != "EDITOR" {
		t.Errorf("lookup order = %v", seen)
	}
}
