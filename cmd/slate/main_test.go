package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slate/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	projectDir string
}

func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)

	project := filepath.Join(base, "project")
	for _, dir := range []string{
		filepath.Join(project, "recordings"),
		filepath.Join(project, "final"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
project_dir = %q
log_dir = %q
data_dir = %q

[transcripts]
dir = "recordings"

[subtitles]
candidates = ["final/final.srt"]

[logging]
format = "json"
level = "info"

[history]
enabled = true
keep = 10
`, project, filepath.Join(base, "logs"), filepath.Join(base, "data"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return cliTestEnv{baseDir: base, configPath: configPath, projectDir: project}
}

func (env cliTestEnv) writeTranscript(t *testing.T, name, text string) {
	t.Helper()
	path := filepath.Join(env.projectDir, "recordings", name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write transcript %s: %v", path, err)
	}
}

func (env cliTestEnv) writeSubtitle(t *testing.T, cues ...testsupport.Cue) {
	t.Helper()
	path := filepath.Join(env.projectDir, "final", "final.srt")
	if err := os.WriteFile(path, []byte(testsupport.BuildSRT(cues...)), 0o644); err != nil {
		t.Fatalf("write subtitle %s: %v", path, err)
	}
}

func runCLI(t *testing.T, env cliTestEnv, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output %q does not contain %q", haystack, needle)
	}
}

func TestAlignCommandMissingSubtitle(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeTranscript(t, "01-1-intro.txt", "Welcome along today we assemble the premium widget kit from scratch")

	_, _, err := runCLI(t, env, "align")
	if err == nil {
		t.Fatal("expected align to fail without a subtitle track")
	}
	requireContains(t, err.Error(), "subtitle")
}

func TestRootHelpListsCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"align", "chapters", "history", "config"} {
		requireContains(t, out, name)
	}
}
