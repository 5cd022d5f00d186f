package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "zero duration",
			duration: 0,
			want:     "0s",
		},
		{
			name:     "rounds half second up",
			duration: 1500 * time.Millisecond,
			want:     "2s",
		},
		{
			name:     "one minute five seconds",
			duration: time.Minute + 5*time.Second,
			want:     "1m05s",
		},
		{
			name:     "159 minutes 59 seconds",
			duration: 159*time.Minute + 59*time.Second,
			want:     "159m59s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatElapsed(tt.duration)
			assert.Equal(t, tt.want, got, "formatElapsed should return expected format for %v", tt.duration)
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "teleporter window",
			args:       []string{"--start", "25730", "--end", "25740"},
			wantCode:   exitOK,
			wantStdout: "25734\n",
		},
		{
			name:       "short flags and custom target",
			args:       []string{"-t", "32765", "-e", "4"},
			wantCode:   exitOK,
			wantStdout: "1\n",
		},
		{
			name:       "verbose logs to stderr only",
			args:       []string{"-v", "-t", "2", "-e", "0"},
			wantCode:   exitOK,
			wantStdout: "0\n",
			wantStderr: "Found parameter 0",
		},
		{
			name:       "not found prints nothing",
			args:       []string{"--start", "0", "--end", "3"},
			wantCode:   exitError,
			wantStderr: "No parameter found",
		},
		{
			name:       "range outside domain",
			args:       []string{"--end", "40000"},
			wantCode:   exitError,
			wantStderr: "parameter out of domain",
		},
		{
			name:       "unknown flag",
			args:       []string{"--bogus"},
			wantCode:   exitUsage,
			wantStderr: "unknown flag",
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantCode: exitOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_DefaultSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("full parameter scan skipped in short mode")
	}

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "25734\n", stdout.String())
	assert.Empty(t, stderr.String())
}
