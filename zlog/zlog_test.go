package zlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestStringFormatterOutput(t *testing.T) {
	var buf bytes.Buffer
	SetFormatter(NewStringFormatter(&buf))
	defer SetFormatter(nil)

	log := NewPackageLogger("test", "fmt")
	SetGlobalLogLevel(INFO)

	log.Infof("hello %d", 42)
	log.Debugf("hidden at info")
	log.Errorf("boom")

	got := buf.String()
	if !strings.Contains(got, "fmt: hello 42\n") {
		t.Errorf("missing info line in %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line leaked at INFO: %q", got)
	}
	if !strings.Contains(got, "boom") {
		t.Errorf("missing error line in %q", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetFormatter(NewStringFormatter(&buf))
	defer SetFormatter(nil)

	log := NewPackageLogger("test", "lvl")
	SetGlobalLogLevel(TRACE)
	log.Tracef("trace visible")
	SetGlobalLogLevel(ERROR)
	log.Warningf("warning hidden")

	got := buf.String()
	if !strings.Contains(got, "trace visible") {
		t.Errorf("trace line missing at TRACE: %q", got)
	}
	if strings.Contains(got, "warning hidden") {
		t.Errorf("warning line leaked at ERROR: %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"DEBUG", DEBUG, true},
		{"debug", DEBUG, true},
		{"E", ERROR, true},
		{"TRACE", TRACE, true},
		{"bogus", 0, false},
	}
	for i, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("case %d: got %v, %v", i, got, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("case %d: expected non-nil error", i)
		}
	}
}

func TestNewPackageLoggerIsSingleton(t *testing.T) {
	a := NewPackageLogger("repo", "pkg")
	b := NewPackageLogger("repo", "pkg")
	if a != b {
		t.Errorf("same repo/pkg returned distinct loggers")
	}
}
