package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xsheet/internal/config"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	res := CheckDirectoryAccess("Export directory", dir)
	if !res.Passed {
		t.Errorf("writable directory failed: %s", res.Detail)
	}

	res = CheckDirectoryAccess("Export directory", filepath.Join(dir, "missing"))
	if res.Passed {
		t.Error("missing directory passed")
	}
	if !strings.Contains(res.Detail, "does not exist") {
		t.Errorf("detail = %q", res.Detail)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	res = CheckDirectoryAccess("Export directory", file)
	if res.Passed {
		t.Error("regular file passed as directory")
	}
}

func TestCheckProjectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.toml")
	if err := os.WriteFile(path, []byte("[document]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if res := CheckProjectFile(path); !res.Passed {
		t.Errorf("readable file failed: %s", res.Detail)
	}
	if res := CheckProjectFile(filepath.Join(dir, "missing.toml")); res.Passed {
		t.Error("missing file passed")
	}
	if res := CheckProjectFile(dir); res.Passed {
		t.Error("directory passed as project file")
	}
}

func TestCheckFreeSpace(t *testing.T) {
	dir := t.TempDir()

	if res := CheckFreeSpace(dir, 1); !res.Passed {
		t.Errorf("1 MB floor failed on temp filesystem: %s", res.Detail)
	}
	// No filesystem holds an exabyte.
	if res := CheckFreeSpace(dir, 1<<40); res.Passed {
		t.Error("impossible floor passed")
	}
	if res := CheckFreeSpace(filepath.Join(dir, "missing"), 1); res.Passed {
		t.Error("statfs on missing path passed")
	}
}

func TestRunAll(t *testing.T) {
	base := t.TempDir()
	project := filepath.Join(base, "shot.toml")
	if err := os.WriteFile(project, []byte("[document]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Output.ExportDir = base
	cfg.Output.MinFreeMB = 1
	cfg.Manifest.Enabled = true
	cfg.Manifest.Path = filepath.Join(base, "manifest.db")

	results := RunAll(&cfg, project)
	if len(results) != 4 {
		t.Fatalf("RunAll returned %d results, want 4", len(results))
	}
	if !AllPassed(results) {
		for _, res := range results {
			t.Logf("%s: passed=%v detail=%s", res.Name, res.Passed, res.Detail)
		}
		t.Error("expected all checks to pass")
	}

	cfg.Output.ExportDir = filepath.Join(base, "missing")
	if AllPassed(RunAll(&cfg, project)) {
		t.Error("missing export dir should fail")
	}

	if RunAll(nil, project) != nil {
		t.Error("nil config should produce no results")
	}
}
