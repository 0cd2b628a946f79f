package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".js" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// languageSamples covers every lexer state plus the normalization paths
// (CRLF, a BOM that is not at the start of the text).
var languageSamples = []string{
	"",
	"\n\n",
	"var x = 5;",
	"/* open\nstill */ done",
	"// line comment\nx",
	"s = 'esc\\'aped' + \"dq\";",
	"re = /a\\/b/g; a / b",
	"if (x) { return Math.max(1, 2); }",
	"\"unterminated\nnext",
	"ünïcödé = '日本語' /* 💡 */",
	"\r\n\ufeffvar crlf;\r\n",
}

func addLanguageSeeds(f *testing.F) {
	for _, s := range languageSamples {
		f.Add([]byte(s))
	}
	f.Add(clampSeed(bytes.Repeat([]byte("/*"), 100)))
	f.Add([]byte(strings.Repeat("a/", 50)))
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
