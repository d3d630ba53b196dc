package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"orcidscout/internal/lookup"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText += " " + message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// affiliationKind maps a lookup outcome onto the status palette.
func affiliationKind(status lookup.AffiliationStatus) statusKind {
	switch status {
	case lookup.StatusYes:
		return statusOK
	case lookup.StatusNo, lookup.StatusNoEmploymentData:
		return statusWarn
	case lookup.StatusError:
		return statusError
	default:
		return statusInfo
	}
}

// renderSummary returns one status line per affiliation outcome that occurred.
func renderSummary(rows []lookup.ResultRow, colorize bool) []string {
	counts := lookup.Tally(rows)
	lines := make([]string, 0, len(lookup.Statuses))
	for _, status := range lookup.Statuses {
		n := counts[status]
		if n == 0 {
			continue
		}
		noun := "authors"
		if n == 1 {
			noun = "author"
		}
		lines = append(lines, renderStatusLine(status.Label(), affiliationKind(status), fmt.Sprintf("%d %s", n, noun), colorize))
	}
	return lines
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
