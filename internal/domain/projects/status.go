package projects

import (
	"strings"

	"promana-go/internal/domain/integrity"
)

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusStarted    Status = "STARTED"
	StatusFinished   Status = "FINISHED"
)

var Statuses = []Status{StatusNotStarted, StatusStarted, StatusFinished}

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusStarted, StatusFinished:
		return true
	}
	return false
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.Valid() {
		names := make([]string, 0, len(Statuses))
		for _, s := range Statuses {
			names = append(names, string(s))
		}
		return "", integrity.Violate("status", "must be one of "+strings.Join(names, ", "))
	}
	return status, nil
}
