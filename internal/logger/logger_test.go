package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}
	realTmpDir, _ := filepath.EvalSymlinks(tmpDir)
	realGot, _ := filepath.EvalSymlinks(filepath.Dir(got))
	if realGot != filepath.Join(realTmpDir, defaultLogDirName) {
		t.Fatalf("unexpected log dir: %s", realGot)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
}

func TestNewReleaseWritesJSONToFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "release.log"})
	log.Info("post_published", zap.Int64("post_id", 7))
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), `"message":"post_published"`) {
		t.Fatalf("expected json message, got=%s", string(content))
	}
	if !strings.Contains(string(content), `"post_id":7`) {
		t.Fatalf("expected structured field, got=%s", string(content))
	}
}

func TestNewDebugDoesNotWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug-log-test")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		raw   string
		debug bool
		want  zap.AtomicLevel
	}{
		{raw: "", debug: true, want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{raw: "", debug: false, want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{raw: "WARN", debug: true, want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{raw: "bogus", debug: false, want: zap.NewAtomicLevelAt(zap.InfoLevel)},
	}
	for _, tc := range cases {
		got := resolveLevel(tc.raw, tc.debug)
		if got.Level() != tc.want.Level() {
			t.Fatalf("resolveLevel(%q,%v) want %s got %s", tc.raw, tc.debug, tc.want.Level(), got.Level())
		}
	}
}

func TestReleaseLevelFiltersDebug(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "level.log", Level: "warn"})
	log.Info("should-be-dropped")
	log.Warn("should-be-kept")
	_ = log.Sync()

	content, _ := os.ReadFile(filepath.Join(tmpDir, "level.log"))
	if strings.Contains(string(content), "should-be-dropped") {
		t.Fatalf("info should be filtered at warn level")
	}
	if !strings.Contains(string(content), "should-be-kept") {
		t.Fatalf("warn should be written")
	}
}
