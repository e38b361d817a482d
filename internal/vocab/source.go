package vocab

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/UoEMainLibrary/dspace-additions/internal/services"
)

// record is one line (or table row) of a source: its fields in order.
type record []string

// readSource reads every record from path, choosing the HTML table reader for
// .html and .htm files and the comma-separated reader otherwise.
func readSource(kind, path string) ([]record, error) {
	if strings.TrimSpace(path) == "" {
		return nil, loadError(errors.New("path is empty"), kind, "open", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, loadError(err, kind, "open", path)
	}
	defer file.Close()

	var records []record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		records, err = parseHTMLTable(file)
	default:
		records, err = parseLines(file)
	}
	if err != nil {
		return nil, loadError(err, kind, "read", path)
	}
	return records, nil
}

// parseLines splits each line on every comma. Quoting is not interpreted and
// lines may be any length. A trailing "\n" or "\r\n" is dropped.
func parseLines(r io.Reader) ([]record, error) {
	reader := bufio.NewReader(r)
	var records []record
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			records = append(records, strings.Split(line, ","))
		}
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
}

// loadError marks cause as a configuration failure and attaches the caller's
// stack, the offending file, and a hint for the operator.
func loadError(cause error, kind, operation, path string) error {
	err := services.Wrap(services.ErrConfiguration, "vocab", operation+" "+kind+" file", path, cause)
	err = errors.WithHint(err, "check the loadtags section of the configuration")
	err = errors.WithDetailf(err, "%s file: %s", kind, path)
	return errors.WithStackDepth(err, 1)
}
