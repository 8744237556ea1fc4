package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd executes the root command with args, capturing stdout/stderr.
func runCmd(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	// Reset flag state shared across tests.
	verbose = false
	songsDir = ""
	listFormat = "yaml"
	listJQ = ""
	analyzeFormat = "yaml"
	analyzeJQ = ""

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	var outBuf, errBuf bytes.Buffer
	outBuf.ReadFrom(rOut)
	errBuf.ReadFrom(rErr)

	stdout = outBuf.String()
	stderr = errBuf.String()
	if err != nil {
		exitCode = 1
	}
	return stdout, stderr, exitCode
}

func TestListIncludesSamples(t *testing.T) {
	stdout, _, code := runCmd(t, "list", "--songs-dir", t.TempDir(), "-o", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "simple_scale") || !strings.Contains(stdout, "high_reach") {
		t.Fatalf("expected sample songs in listing, got: %s", stdout)
	}
}

func TestListLoadsExternalSongs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my_tune.yaml")
	if err := os.WriteFile(path, []byte("name: My Tune\nbpm: 75\njianpu:\n  - 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, code := runCmd(t, "list", "--songs-dir", dir)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "My Tune") {
		t.Fatalf("expected external song in listing, got: %s", stdout)
	}
}

func TestAnalyzeReportsStrategies(t *testing.T) {
	stdout, _, code := runCmd(t, "analyze", "simple scale", "--songs-dir", t.TempDir())
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"strategies", "optimal", "high", "low", "range"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("analyze output missing %q:\n%s", want, stdout)
		}
	}
}

func TestAnalyzeUnknownSong(t *testing.T) {
	_, _, code := runCmd(t, "analyze", "no such song", "--songs-dir", t.TempDir())
	if code == 0 {
		t.Fatal("expected failure for unknown song")
	}
}

func TestAnalyzeJQFilter(t *testing.T) {
	stdout, _, code := runCmd(t, "analyze", "simple scale",
		"--songs-dir", t.TempDir(), "-o", "json", "--jq", ".strategies[].strategy")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, `"optimal"`) {
		t.Fatalf("jq output = %s", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, code := runCmd(t, "version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "wellflute") {
		t.Fatalf("version output = %s", stdout)
	}
}
