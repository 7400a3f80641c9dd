package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/optional"
)

const dateLayout = "2006-01-02"

// pathParam returns the decoded value of a route parameter.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// parseDate turns a YYYY-MM-DD payload field into a date, keeping absent
// and null as they are.
func parseDate(field string, value optional.Value[string]) (optional.Value[time.Time], error) {
	return optional.Map(value, func(s string) (time.Time, error) {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(s))
		if err != nil {
			return time.Time{}, &hypermedia.InvalidDocumentError{
				Messages: []string{fmt.Sprintf("%s: %q is not a valid YYYY-MM-DD date", field, s)},
			}
		}
		return parsed, nil
	})
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
