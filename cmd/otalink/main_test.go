package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	t.Run("Final-form URL prints unchanged", func(t *testing.T) {
		out, err := execute(t, "resolve", "https://cdn.example.com/pkg.zip?Expires=900")
		require.NoError(t, err)
		require.Equal(t, "https://cdn.example.com/pkg.zip?Expires=900\n", out)
	})

	t.Run("Requires exactly one argument", func(t *testing.T) {
		_, err := execute(t, "resolve")
		require.Error(t, err)
	})
}

func TestExpiryCommand(t *testing.T) {
	t.Run("Prints the countdown", func(t *testing.T) {
		// 3 days, 0 hours, 1 minute and a few seconds: the day/hour/minute
		// parts stay stable even if the clock ticks during the run.
		expires := time.Now().Unix() + 3*86400 + 100
		out, err := execute(t, "expiry", fmt.Sprintf("https://h/p?Expires=%d", expires))
		require.NoError(t, err)
		require.Regexp(t, `^3:0:1:\d{1,2}\n$`, out)
	})

	t.Run("Expired link prints the localized label", func(t *testing.T) {
		out, err := execute(t, "--lang", "zh", "expiry", "https://h/p?Expires=1")
		require.NoError(t, err)
		require.Equal(t, "链接已过期\n", out)
	})

	t.Run("URL without Expires fails", func(t *testing.T) {
		_, err := execute(t, "expiry", "https://h/p")
		require.Error(t, err)
	})
}

func TestHeadersCommand(t *testing.T) {
	t.Run("Prop overrides reach the header builder", func(t *testing.T) {
		out, err := execute(t,
			"--getprop", "/nonexistent/getprop",
			"--prop", "ro.build.version.release=14",
			"--prop", "ro.build.version.oplusrom=V14.0",
			"headers", "https://h/p?g=ABC123")
		require.NoError(t, err)
		require.Contains(t, out, "androidVersion: Android 14\n")
		require.Contains(t, out, "colorOSVersion: ColorOS14.0\n")
		require.Contains(t, out, "id: ABC123\n")

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.True(t, sortedLines(lines), "header lines must be sorted: %q", lines)
	})

	t.Run("Malformed prop override fails", func(t *testing.T) {
		_, err := execute(t, "--prop", "no-equals-sign", "headers")
		require.Error(t, err)
	})
}

func sortedLines(lines []string) bool {
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			return false
		}
	}
	return true
}
