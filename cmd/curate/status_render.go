package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

const statusLabelWidth = 10

// renderStatusLine formats the final run status, e.g. "Status:    [SUCCESS] 0".
func renderStatusLine(label string, status curation.Status, colorize bool) string {
	base := fmt.Sprintf("%-*s [%s] %d", statusLabelWidth, label+":", status, status.Code())
	if colorize {
		if color := statusColor(status); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusColor(status curation.Status) string {
	switch status {
	case curation.StatusSuccess:
		return ansiGreen
	case curation.StatusSkip:
		return ansiYellow
	case curation.StatusError:
		return ansiRed
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
