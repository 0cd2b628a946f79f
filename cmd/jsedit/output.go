package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"jsedit/internal/document"
	"jsedit/internal/style"
	"jsedit/internal/token"
)

type outputFormat string

const (
	formatANSI   outputFormat = "ansi"
	formatPretty outputFormat = "pretty"
	formatJSON   outputFormat = "json"
)

func readOutputFormat(value string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(value))); f {
	case formatANSI, formatPretty, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected ansi|pretty|json)", value)
	}
}

// writeANSI prints every block with its highlighting.
func writeANSI(w io.Writer, doc *document.Document, r *style.Renderer) error {
	for i := 0; i < doc.Len(); i++ {
		b, err := doc.Block(i)
		if err != nil {
			return err
		}
		if i == doc.Len()-1 && len(b.Text) == 0 {
			break
		}
		if _, err := io.WriteString(w, r.Render(b.Text, b.Ranges())+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// writePretty prints one line per block: number, carry-in → carry-out and
// the ranges.
func writePretty(w io.Writer, path string, cached bool, doc *document.Document) error {
	header := fmt.Sprintf("%s: %d lines", path, doc.Len())
	if cached {
		header += " (cached)"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for i := 0; i < doc.Len(); i++ {
		b, err := doc.Block(i)
		if err != nil {
			return err
		}
		parts := make([]string, 0, len(b.Tokens)+len(b.Marks))
		for _, r := range b.Ranges() {
			parts = append(parts, r.String())
		}
		if _, err := fmt.Fprintf(w, "%5d  %-10s → %-10s %s\n", i+1, b.CarryIn, b.CarryOut, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

type jsonBlock struct {
	Line     int           `json:"line"`
	Text     string        `json:"text"`
	CarryIn  string        `json:"carry_in"`
	CarryOut string        `json:"carry_out"`
	Tokens   []token.Range `json:"tokens"`
	Marks    []token.Range `json:"marks,omitempty"`
}

type jsonFile struct {
	Path   string      `json:"path"`
	Cached bool        `json:"cached,omitempty"`
	Lines  []jsonBlock `json:"lines"`
}

func toJSONFile(path string, cached bool, doc *document.Document) (jsonFile, error) {
	out := jsonFile{Path: path, Cached: cached, Lines: make([]jsonBlock, 0, doc.Len())}
	for i := 0; i < doc.Len(); i++ {
		b, err := doc.Block(i)
		if err != nil {
			return jsonFile{}, err
		}
		tokens := b.Tokens
		if tokens == nil {
			tokens = []token.Range{}
		}
		out.Lines = append(out.Lines, jsonBlock{
			Line:     i + 1,
			Text:     b.String(),
			CarryIn:  b.CarryIn.String(),
			CarryOut: b.CarryOut.String(),
			Tokens:   tokens,
			Marks:    b.Marks,
		})
	}
	return out, nil
}

func writeJSON(w io.Writer, files []jsonFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(files) == 1 {
		return enc.Encode(files[0])
	}
	return enc.Encode(files)
}
