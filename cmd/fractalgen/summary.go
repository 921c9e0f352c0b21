// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// summary collects key/value lines printed to stderr after a run.
type summary struct {
	title string
	lines []summaryLine
}

type summaryLine struct {
	key   string
	value string
	warn  bool
}

func newSummary(title string) *summary {
	return &summary{title: title}
}

func (s *summary) add(key string, format string, args ...any) {
	s.lines = append(s.lines, summaryLine{key: key, value: fmt.Sprintf(format, args...)})
}

// warn adds a highlighted line.
func (s *summary) warn(key string, format string, args ...any) {
	s.lines = append(s.lines, summaryLine{key: key, value: fmt.Sprintf(format, args...), warn: true})
}

func (s *summary) print(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)
	keyColor := color.New(color.FgHiBlack)
	warnColor := color.New(color.FgYellow)

	header.Fprintf(w, "fractalgen %s\n", s.title)
	for _, l := range s.lines {
		keyColor.Fprintf(w, "  %-16s", l.key)
		if l.warn {
			warnColor.Fprintln(w, l.value)
			continue
		}
		fmt.Fprintln(w, l.value)
	}
}
