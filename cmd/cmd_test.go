package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCallOSVersion(t *testing.T) {
	out, err := run(t, "call", "getOSVersion")
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), `"`) {
		t.Errorf("expected a JSON string, got %q", out)
	}
}

func TestCallUnknownMethod(t *testing.T) {
	_, err := run(t, "call", "doesNotExist")
	if err == nil || !strings.Contains(err.Error(), "not implemented") {
		t.Fatalf("expected not implemented error, got %v", err)
	}
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	for _, label := range []string{"Model:", "OS version:", "Manufacturer:", "Battery:", "Total storage:", "Available storage:"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing %q in output:\n%s", label, out)
		}
	}
}
