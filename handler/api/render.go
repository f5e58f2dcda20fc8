package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/oxtoacart/bpool"
	"github.com/pandodao/carbon-wallet/form"
)

var buffers = bpool.NewBufferPool(64)

const maxBodySize = 8 << 20

type errorView struct {
	Error  string      `json:"error"`
	Fields form.Errors `json:"fields,omitempty"`
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderError(w http.ResponseWriter, status int, msg string) {
	renderJSON(w, status, errorView{Error: msg})
}

// renderSubmitError maps the errors of form.Submit that are not the
// submission's own.
func renderSubmitError(w http.ResponseWriter, err error) bool {
	var errs form.Errors
	switch {
	case errors.As(err, &errs):
		renderJSON(w, http.StatusUnprocessableEntity, errorView{Error: "validation failed", Fields: errs})
	case errors.Is(err, form.ErrSubmitting):
		renderError(w, http.StatusConflict, err.Error())
	default:
		return false
	}

	return true
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

// pageParam reads the 1-based page query parameter.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// paginate returns the items of page, the page actually served and the
// number of pages.
func paginate[T any](items []T, page, size int) ([]T, int, int) {
	pages := (len(items) + size - 1) / size
	if pages == 0 {
		pages = 1
	}

	page = min(max(page, 1), pages)
	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))

	return items[start:end], page, pages
}
