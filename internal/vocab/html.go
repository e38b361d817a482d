package vocab

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

// parseHTMLTable reads every table row as a record, one field per th/td cell.
// Rows without cells are skipped.
func parseHTMLTable(r io.Reader) ([]record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}
	var records []record
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var fields record
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			fields = append(fields, strings.TrimSpace(cell.Text()))
		})
		if len(fields) > 0 {
			records = append(records, fields)
		}
	})
	return records, nil
}
