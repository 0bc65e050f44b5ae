package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/your-org/vamdc-mcp-server/spectral"
)

// handleLines handles GET /mcp/lines
//
// @Summary     Get spectral lines within a wavelength range
// @Tags        lines
// @Produce     json
// @Param       lambda_min  query  number  true  "Lower wavelength bound in Angstrom"
// @Param       lambda_max  query  number  true  "Upper wavelength bound in Angstrom"
// @Param       listNodes   query  array   false "Node TAP endpoints to restrict the search to"
// @Param       listSpecies query  array   false "Species InChIKeys to restrict the search to"
func (h *RESTHandler) handleLines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lambdaMin, err := requiredFloat(q, "lambda_min")
	if err != nil {
		writeFailure(w, err)
		return
	}
	lambdaMax, err := requiredFloat(q, "lambda_max")
	if err != nil {
		writeFailure(w, err)
		return
	}

	listNodes := q["listNodes"]
	listSpecies := q["listSpecies"]

	records, err := h.svc.QueryLines(r.Context(), lambdaMin, lambdaMax, listNodes, listSpecies)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func requiredFloat(q url.Values, name string) (float64, error) {
	s := q.Get(name)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", spectral.ErrMissingParameter, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", spectral.ErrMissingParameter, name, s)
	}
	return v, nil
}
