package engine

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/accrava/dartvet/internal/types"
)

func writeDart(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestScan_SingleFileIgnoredFuture(t *testing.T) {
	dir := t.TempDir()
	p := writeDart(t, dir, "a.dart", "void main() {\n  fetchUser();\n}\n")
	s, err := Scan(Config{Path: p})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(s.FilesExamined) != 1 || s.FilesExamined[0] != p {
		t.Fatalf("files examined: %v", s.FilesExamined)
	}
	if len(s.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %+v", s.Findings)
	}
	f := s.Findings[0]
	if f.Category != "Ignored Future" || f.Severity != types.SevHigh || f.Line != 2 {
		t.Fatalf("unexpected finding: %+v", f)
	}
	if f.Snippet != "fetchUser();" {
		t.Fatalf("snippet: %q", f.Snippet)
	}
}

func TestScan_UnreachableThenClean(t *testing.T) {
	dir := t.TempDir()
	p := writeDart(t, dir, "a.dart", "int f() {\n  return 5;\n  print('x');\n}\n")
	s, err := Scan(Config{Path: p})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(s.Findings) != 1 || s.Findings[0].Category != "Unreachable Code" || s.Findings[0].Line != 2 {
		t.Fatalf("expected unreachable finding at line 2, got %+v", s.Findings)
	}

	// return as the literal last line produces nothing
	p2 := writeDart(t, dir, "b.dart", "  return 5;")
	s2, err := Scan(Config{Path: p2})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(s2.Findings) != 0 {
		t.Fatalf("trailing return should be clean, got %+v", s2.Findings)
	}
}

func TestScan_DirectoryCounts(t *testing.T) {
	dir := t.TempDir()
	writeDart(t, dir, "clean1.dart", "int add(int a, int b) {\n  return a + b;\n}\n")
	writeDart(t, dir, "clean2.dart", "// comment only\n\nint x = 1;\n")
	writeDart(t, dir, "late.dart", "class C {\n  late String x;\n}\n")

	s, err := Scan(Config{Path: dir})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(s.FilesExamined) != 3 {
		t.Fatalf("files examined = %d, want 3", len(s.FilesExamined))
	}
	if len(s.Findings) != 1 || s.Findings[0].Severity != types.SevMed {
		t.Fatalf("expected one medium finding, got %+v", s.Findings)
	}
	if s.Findings[0].Category != "Late Initialization" {
		t.Fatalf("category: %s", s.Findings[0].Category)
	}
	// 3 + 3 + 3 raw lines; comment-only and blank lines drop from code count
	if s.TotalLines != 9 {
		t.Fatalf("total lines = %d, want 9", s.TotalLines)
	}
	if s.CodeLines != 7 {
		t.Fatalf("code lines = %d, want 7", s.CodeLines)
	}
}

func TestScan_NonexistentPath(t *testing.T) {
	_, err := Scan(Config{Path: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Fatal("expected configuration error for nonexistent path")
	}
	if !strings.Contains(err.Error(), "cannot scan") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestScan_NonDartFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Scan(Config{Path: p}); err == nil {
		t.Fatal("expected configuration error for non-dart file")
	}
}

func TestScan_EmptyDirIsNotAnError(t *testing.T) {
	s, err := Scan(Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("empty dir should scan clean: %v", err)
	}
	if len(s.FilesExamined) != 0 || len(s.Findings) != 0 {
		t.Fatalf("expected empty session, got %+v", s)
	}
	if !s.Clean() {
		t.Fatal("empty session should be clean")
	}
}

func TestScan_ForceUnwrap(t *testing.T) {
	dir := t.TempDir()
	p := writeDart(t, dir, "a.dart", "final y = x!.y;\n")
	s, err := Scan(Config{Path: p})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(s.Findings) != 1 || s.Findings[0].Category != "Null Safety Issue" || s.Findings[0].Severity != types.SevMed {
		t.Fatalf("expected medium null-safety finding, got %+v", s.Findings)
	}
}

func TestScan_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeDart(t, dir, "a.dart", "saveAll();\nif (true) {}\n")
	writeDart(t, dir, "sub/b.dart", "late int n;\n")
	a, err := Scan(Config{Path: dir})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Scan(Config{Path: dir})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two scans of the same tree differ:\n%+v\n%+v", a, b)
	}
}

func TestScan_DiscoveryOrderIsLexical(t *testing.T) {
	dir := t.TempDir()
	writeDart(t, dir, "z.dart", "late int z;\n")
	writeDart(t, dir, "a.dart", "late int a;\n")
	s, err := Scan(Config{Path: dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.FilesExamined) != 2 || filepath.Base(s.FilesExamined[0]) != "a.dart" {
		t.Fatalf("expected lexical order, got %v", s.FilesExamined)
	}
	if s.Findings[0].Path != s.FilesExamined[0] {
		t.Fatalf("finding order should follow file order: %+v", s.Findings)
	}
}

func TestScan_SkipsGeneratedDirs(t *testing.T) {
	dir := t.TempDir()
	writeDart(t, dir, "a.dart", "int x = 1;\n")
	writeDart(t, dir, ".dart_tool/gen.dart", "if (true) {}\n")
	writeDart(t, dir, "build/out.dart", "if (true) {}\n")
	s, err := Scan(Config{Path: dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.FilesExamined) != 1 {
		t.Fatalf("generated dirs should be skipped, examined %v", s.FilesExamined)
	}
}

func TestScan_IgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeDart(t, dir, "a.dart", "late int a;\n")
	writeDart(t, dir, "gen/skip.dart", "if (true) {}\n")
	if err := os.WriteFile(filepath.Join(dir, ".dartvetignore"), []byte("gen/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Scan(Config{Path: dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.FilesExamined) != 1 || filepath.Base(s.FilesExamined[0]) != "a.dart" {
		t.Fatalf("ignored dir still scanned: %v", s.FilesExamined)
	}
}

func TestScan_DisableRule(t *testing.T) {
	dir := t.TempDir()
	p := writeDart(t, dir, "a.dart", "fetchUser();\n")
	s, err := Scan(Config{Path: p, DisableRules: "ignored_future"})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Findings) != 0 {
		t.Fatalf("disabled rule still fired: %+v", s.Findings)
	}
}

func TestScan_UnreadableFileIsSkipped(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	writeDart(t, dir, "a.dart", "int x = 1;\n")
	locked := writeDart(t, dir, "locked.dart", "fetchUser();\n")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	s, err := Scan(Config{Path: dir})
	if err != nil {
		t.Fatalf("read errors must not abort the scan: %v", err)
	}
	if len(s.ReadErrors) != 1 || s.ReadErrors[0].Path != locked {
		t.Fatalf("expected one read error for %s, got %+v", locked, s.ReadErrors)
	}
	if len(s.FilesExamined) != 1 {
		t.Fatalf("unreadable file should not count as examined: %v", s.FilesExamined)
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines("a\nb\n"); len(got) != 2 {
		t.Fatalf("trailing newline should not add a line: %v", got)
	}
	if got := splitLines("a\r\nb"); got[0] != "a" || got[1] != "b" {
		t.Fatalf("CRLF not normalized: %v", got)
	}
	if got := splitLines(""); len(got) != 0 {
		t.Fatalf("empty file should have zero lines: %v", got)
	}
}
