package trace

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // chosen from the output path
	FormatText                 // one human-readable line per event
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// FormatEvent renders ev in format, newline included.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return []byte(formatText(ev))
}

type jsonEvent struct {
	Time     string `json:"time"`
	Seq      uint64 `json:"seq"`
	Kind     string `json:"kind"`
	Scope    string `json:"scope"`
	SpanID   uint64 `json:"span_id,omitempty"`
	ParentID uint64 `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Blocks   int    `json:"blocks,omitempty"`
	CarryIn  string `json:"carry_in,omitempty"`
	CarryOut string `json:"carry_out,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	data, _ := json.Marshal(jsonEvent{ //nolint:errcheck // only strings and ints
		Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Name:     ev.Name,
		File:     ev.File,
		Line:     ev.Line,
		Blocks:   ev.Blocks,
		CarryIn:  ev.CarryIn,
		CarryOut: ev.CarryOut,
		Detail:   ev.Detail,
	})
	return append(data, '\n')
}

// formatText renders
//
//	#seq  → scope:name file:line in→out blocks=N (detail)
//
// with nested events indented by two spaces.
func formatText(ev *Event) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%-5d ", ev.Seq)
	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}
	switch ev.Kind {
	case KindBegin:
		sb.WriteString("→ ")
	case KindEnd:
		sb.WriteString("← ")
	default:
		sb.WriteString("• ")
	}
	sb.WriteString(ev.Scope.String())
	sb.WriteByte(':')
	sb.WriteString(ev.Name)

	if ev.File != "" || ev.Line > 0 {
		sb.WriteByte(' ')
		sb.WriteString(ev.File)
		if ev.Line > 0 {
			if ev.File != "" {
				sb.WriteByte(':')
			} else {
				sb.WriteString("line ")
			}
			sb.WriteString(strconv.Itoa(ev.Line))
		}
	}
	if ev.CarryIn != "" || ev.CarryOut != "" {
		fmt.Fprintf(&sb, " %s→%s", ev.CarryIn, ev.CarryOut)
	}
	if ev.Blocks > 0 {
		fmt.Fprintf(&sb, " blocks=%d", ev.Blocks)
	}
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	sb.WriteByte('\n')
	return sb.String()
}
