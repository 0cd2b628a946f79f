// Package observ measures highlighting phases for --timings output.
package observ

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
)

// Phase records the duration of one step (load, lex, cache-read...).
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks consecutive phases. Not safe for concurrent use; the driver
// keeps one per file.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// PhaseReport представляет сжатую информацию о фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Merge sums reports phase by phase name, e.g. over every file of a
// directory. Notes are dropped; phases come out sorted by name.
func Merge(reports ...Report) Report {
	sums := make(map[string]float64)
	var out Report
	for _, r := range reports {
		out.TotalMS += r.TotalMS
		for _, p := range r.Phases {
			sums[p.Name] += p.DurationMS
		}
	}
	for name, ms := range sums {
		out.Phases = append(out.Phases, PhaseReport{Name: name, DurationMS: ms})
	}
	sort.Slice(out.Phases, func(i, j int) bool { return out.Phases[i].Name < out.Phases[j].Name })
	return out
}

// WriteSummary prints a human-readable table of the report. Colour follows
// color.NoColor, which the CLI sets from --color.
func (r Report) WriteSummary(w io.Writer, title string) {
	head := color.New(color.Bold)
	dim := color.New(color.Faint)
	if title == "" {
		title = "timings"
	}
	_, _ = head.Fprintf(w, "%s:\n", title)
	for _, p := range r.Phases {
		_, _ = fmt.Fprintf(w, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			_, _ = dim.Fprintf(w, "  // %s", p.Note)
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = head.Fprintf(w, "  %-20s %7.2f ms\n", "total", r.TotalMS)
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
