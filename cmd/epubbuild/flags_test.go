package main

import (
	"errors"
	"io"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing and argument rejection
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    cliFlags
		wantErr bool
	}{
		{"no flags", nil, cliFlags{}, false},
		{"quiet short", []string{"-q"}, cliFlags{quiet: true}, false},
		{"verbose long", []string{"--verbose"}, cliFlags{verbose: true}, false},
		{"version", []string{"--version"}, cliFlags{version: true}, false},
		{"help short", []string{"-h"}, cliFlags{help: true}, false},
		{"help long", []string{"--help"}, cliFlags{help: true}, false},
		{"positional argument", []string{"content"}, cliFlags{}, true},
		{"unknown flag", []string{"--output", "x"}, cliFlags{}, true},
		{"quiet and verbose", []string{"-q", "-v"}, cliFlags{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				if !errors.Is(err, ErrUsage) {
					t.Fatalf("parseFlags(%v) error = %v, want ErrUsage", tt.args, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags(%v) unexpected error: %v", tt.args, err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags(%v) = %+v, want %+v", tt.args, *got, tt.want)
			}
		})
	}
}
