package httpapi

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	// maxQueryInt bounds page and limit so that (page-1)*limit always fits
	// in the int64 OFFSET handed to the database.
	maxQueryInt = math.MaxInt32
)

// parsePage reads ?page= and ?limit=. Both default when absent and must be
// integers in [1, maxQueryInt] when present.
func parsePage(r *http.Request) (models.Page, error) {
	page, err := positiveInt(r, "page", defaultPage)
	if err != nil {
		return models.Page{}, err
	}
	limit, err := positiveInt(r, "limit", defaultLimit)
	if err != nil {
		return models.Page{}, err
	}
	return models.Page{Page: page, Limit: limit}, nil
}

func positiveInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxQueryInt {
		return 0, common.Invalid("Invalid " + name + " parameter")
	}
	return n, nil
}

// optionalBool reads a boolean query parameter; absent means nil.
func optionalBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, common.Invalid("Invalid " + name + " parameter")
	}
	return &b, nil
}
