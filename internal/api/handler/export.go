package handler

import (
	"encoding/csv"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adelingruian/MyNotes/internal/api/metrics"
)

const exportFilename = "entries.csv"

// Download handles GET /download: the caller's entries as headerless
// title,description,date rows. Fields are quoted only when they contain a
// comma, a quote or a line break.
func (h *EntryHandler) Download(c echo.Context) error {
	entries, err := h.service.ListMine(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	for _, e := range entries {
		if err := w.Write([]string{e.Title, e.Description, e.Date.String()}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	metrics.ExportsTotal.Inc()
	return nil
}
