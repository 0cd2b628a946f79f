package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"jsedit/internal/document"
	"jsedit/internal/driver"
	"jsedit/internal/source"
	"jsedit/internal/style"
)

func TestReadModes(t *testing.T) {
	for _, v := range []string{"", "auto", "ON", " off "} {
		if _, err := readColorMode(v); err != nil {
			t.Fatalf("readColorMode(%q): %v", v, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatal("expected error for invalid --ui value")
	}
	if f, err := readOutputFormat("JSON"); err != nil || f != formatJSON {
		t.Fatalf("readOutputFormat(JSON) = %q, %v", f, err)
	}
	if _, err := readOutputFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func testDoc(text string) *document.Document {
	doc := document.New(document.Config{})
	doc.SetText(text)
	return doc
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	if err := writePretty(&buf, "a.js", true, testDoc("/* a\nb */ 1")); err != nil {
		t.Fatal(err)
	}
	want := "a.js: 2 lines (cached)\n" +
		"    1  start      → comment    comment[0,4)\n" +
		"    2  comment    → start      comment[0,4) number[5,6)\n"
	if got := buf.String(); got != want {
		t.Fatalf("writePretty:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteANSIPlain(t *testing.T) {
	r := style.NewRenderer(style.Default(), lipgloss.NewRenderer(&bytes.Buffer{}))
	var buf bytes.Buffer
	if err := writeANSI(&buf, testDoc("var x;\n\tx++;\n"), r); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "var x;\n\tx++;\n"; got != want {
		t.Fatalf("writeANSI = %q, want %q", got, want)
	}
}

func TestToJSONFile(t *testing.T) {
	f, err := toJSONFile("a.js", false, testDoc("x = 'y'"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"path":"a.js","lines":[{"line":1,"text":"x = 'y'","carry_in":"start","carry_out":"start",` +
		`"tokens":[{"offset":2,"length":1,"kind":"operator"},{"offset":4,"length":3,"kind":"string"}]}]}`
	if string(data) != want {
		t.Fatalf("json:\n%s\nwant:\n%s", data, want)
	}
}

func TestRangesCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "jsedit.toml")
	if err := os.WriteFile(cfgPath, []byte("[symbols]\nkeywords = [\"await\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "a.js")
	if err := os.WriteFile(src, []byte("await x;\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"ranges", "--config", cfgPath, "--no-cache", "--color", "off", "--format", "json", src})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var got jsonFile
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(got.Lines))
	}
	if tok := got.Lines[0].Tokens; len(tok) == 0 || tok[0].Kind.String() != "keyword" {
		t.Fatalf("await should be a keyword, got %+v", tok)
	}
	if !strings.HasSuffix(got.Path, "a.js") {
		t.Fatalf("path = %q", got.Path)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestRangesWarningsExitStatus(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "jsedit.toml")
	writeFile(t, cfgPath, "")
	bad := filepath.Join(dir, "bad.js")
	writeFile(t, bad, "s = 'open\nok;\n")
	good := filepath.Join(dir, "good.js")
	writeFile(t, good, "s = 'closed';\n")
	t.Cleanup(func() { _ = rangesCmd.Flags().Set("warnings", "false") })

	var stderr bytes.Buffer
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&stderr)

	rootCmd.SetArgs([]string{"ranges", "--config", cfgPath, "--no-cache", "--color", "off", "--warnings", bad})
	err := rootCmd.Execute()
	if !errors.Is(err, errWarnings) {
		t.Fatalf("err = %v, want errWarnings", err)
	}
	if !strings.Contains(stderr.String(), "bad.js:1:5: warning:") || !strings.Contains(stderr.String(), "    s = 'open\n") {
		t.Fatalf("stderr = %q", stderr.String())
	}

	stderr.Reset()
	rootCmd.SetArgs([]string{"ranges", "--config", cfgPath, "--no-cache", "--color", "off", "--warnings", good})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("clean file: %v (stderr %q)", err, stderr.String())
	}
}

func TestCacheClean(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	cfgPath := filepath.Join(dir, "jsedit.toml")
	writeFile(t, cfgPath, "[cache]\ndir = "+strconv.Quote(cacheDir)+"\n")
	src := filepath.Join(dir, "a.js")
	writeFile(t, src, "var a = 1;\n")

	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"ranges", "--config", cfgPath, "--no-cache=false", "--color", "off", src})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("ranges: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"cache", "clean", "--config", cfgPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("cache clean: %v", err)
	}
	if want := "removed 1 cached files from " + cacheDir + "\n"; out.String() != want {
		t.Fatalf("out = %q, want %q", out.String(), want)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"cache", "dir", "--config", cfgPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("cache dir: %v", err)
	}
	if out.String() != cacheDir+"\n" {
		t.Fatalf("cache dir = %q", out.String())
	}
}

func TestDisplayPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	res := &driver.FileResult{Path: filepath.Join(wd, "sub", "a.js")}
	if got := displayPath(res); got != "sub/a.js" {
		t.Fatalf("displayPath = %q", got)
	}

	f, err := source.Virtual("<stdin>", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	stdin := &driver.FileResult{Path: f.Path, File: f}
	if got := displayPath(stdin); got != "<stdin>" {
		t.Fatalf("displayPath(stdin) = %q", got)
	}
}
