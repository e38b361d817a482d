package curation

import "fmt"

// Status is a curation outcome. The numeric values match the codes DSpace
// curators report.
type Status int

const (
	StatusUnset   Status = -3
	StatusError   Status = -1
	StatusSuccess Status = 0
	StatusSkip    Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusUnset:
		return "UNSET"
	case StatusError:
		return "ERROR"
	case StatusSuccess:
		return "SUCCESS"
	case StatusSkip:
		return "SKIP"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Code returns the numeric curator code.
func (s Status) Code() int {
	return int(s)
}

// MarshalText renders the status name for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
