package query

import (
	"eventsBoard/internal/models"
	"github.com/go-playground/validator/v10"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var validate = validator.New()

type eventFilters struct {
	DateFrom string `validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `validate:"omitempty,datetime=2006-01-02"`
}

// EventFilters reads search, category, date_from, date_to and location from the query
// string as a patch over the session filters. Absent parameters stay nil; a parameter
// given with an empty value clears that criterion. search and location are substring
// needles and are kept verbatim. Malformed dates come back as validator.ValidationErrors.
func EventFilters(r *http.Request) (models.FiltersPatch, error) {
	q := r.URL.Query()

	patch := models.FiltersPatch{
		Search:   param(q, "search", false),
		Category: param(q, "category", true),
		DateFrom: param(q, "date_from", true),
		DateTo:   param(q, "date_to", true),
		Location: param(q, "location", false),
	}

	dates := eventFilters{DateFrom: deref(patch.DateFrom), DateTo: deref(patch.DateTo)}
	if err := validate.Struct(dates); err != nil {
		return models.FiltersPatch{}, err
	}

	return patch, nil
}

// Bool reports whether the named query parameter is set to a true value.
func Bool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

func param(q url.Values, name string, trim bool) *string {
	if _, ok := q[name]; !ok {
		return nil
	}

	v := q.Get(name)
	if trim {
		v = strings.TrimSpace(v)
	}

	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
