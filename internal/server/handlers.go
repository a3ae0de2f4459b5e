package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"primerd/design"
	"primerd/oligo"
)

// designRequest mirrors the design_primers tool parameters. Optional
// fields override the configured defaults when present.
type designRequest struct {
	Sequence  string   `json:"sequence" binding:"required"`
	SizeMin   *int     `json:"primer_size_min"`
	SizeOpt   *int     `json:"primer_size_opt"`
	SizeMax   *int     `json:"primer_size_max"`
	TmMin     *float64 `json:"primer_tm_min"`
	TmOpt     *float64 `json:"primer_tm_opt"`
	TmMax     *float64 `json:"primer_tm_max"`
	GCClamp   *int     `json:"gc_clamp"`
	NumReturn *int     `json:"num_return"`
}

type troubleshootRequest struct {
	Sequence  string `json:"sequence" binding:"required"`
	NumReturn *int   `json:"num_return"`
}

func (s *Server) designPrimers(c *gin.Context) {
	var req designRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := design.Design(s.oracle, req.Sequence, req.params(s.conf.Params()))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) troubleshootPrimers(c *gin.Context) {
	var req troubleshootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	numReturn := s.conf.Params().NumReturn
	if req.NumReturn != nil {
		numReturn = *req.NumReturn
	}

	result, err := design.Troubleshoot(s.oracle, req.Sequence, numReturn)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// params overlays the request's overrides on the configured defaults.
func (r *designRequest) params(p design.Params) design.Params {
	if r.SizeMin != nil {
		p.SizeMin = *r.SizeMin
	}
	if r.SizeOpt != nil {
		p.SizeOpt = *r.SizeOpt
	}
	if r.SizeMax != nil {
		p.SizeMax = *r.SizeMax
	}
	if r.TmMin != nil {
		p.TmMin = *r.TmMin
	}
	if r.TmOpt != nil {
		p.TmOpt = *r.TmOpt
	}
	if r.TmMax != nil {
		p.TmMax = *r.TmMax
	}
	if r.GCClamp != nil {
		p.GCClamp = *r.GCClamp
	}
	if r.NumReturn != nil {
		p.NumReturn = *r.NumReturn
	}
	return p
}

// statusFor maps caller mistakes to 400 and oracle failures to 502.
func statusFor(err error) int {
	var alphaErr *oligo.InvalidAlphabetError

	switch {
	case errors.Is(err, oligo.ErrMissingTarget),
		errors.Is(err, oligo.ErrMultipleTargets),
		errors.Is(err, design.ErrParamRange),
		errors.As(err, &alphaErr):
		return http.StatusBadRequest
	}

	return http.StatusBadGateway
}
