package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/catalog"
	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// AnalyzeRequest is the body of POST /api/beam/analyze. BeamLength is a
// pointer so an absent field can be told apart from zero. NumPoints is
// capped to bound the grid allocation.
type AnalyzeRequest struct {
	BeamLength      *float64           `json:"beamLength" validate:"required"`
	Loads           []beam.LoadSpec    `json:"loads" validate:"required"`
	Supports        []beam.SupportSpec `json:"supports" validate:"required"`
	ElasticModulus  float64            `json:"elasticModulus,omitempty"`
	MomentOfInertia float64            `json:"momentOfInertia,omitempty"`
	NumPoints       int                `json:"numPoints,omitempty" validate:"lte=100000"`
}

// Engine converts the body to an engine request
func (a AnalyzeRequest) Engine() beam.Request {
	var length float64
	if a.BeamLength != nil {
		length = *a.BeamLength
	}
	return beam.Request{
		BeamLength:      length,
		Loads:           a.Loads,
		Supports:        a.Supports,
		ElasticModulus:  a.ElasticModulus,
		MomentOfInertia: a.MomentOfInertia,
		NumPoints:       a.NumPoints,
	}
}

// ReportRequest is an analysis request plus the document header
type ReportRequest struct {
	AnalyzeRequest
	Report report.Meta `json:"report"`
}

// SectionPropertiesResponse is the body of POST /api/sections/properties
type SectionPropertiesResponse struct {
	section.Properties
	Description string `json:"description"`
}

// decode reads a JSON body into v and runs struct validation. It writes the
// 400 response itself and reports whether the handler should continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, "incomplete input", describe(verrs))
			return false
		}
		writeError(w, http.StatusBadRequest, "incomplete input", err.Error())
		return false
	}
	return true
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		default:
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(parts, "; ")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	a, err := s.analyze(req.Engine())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, a); err != nil {
		s.logger.Error("response encoding failed", "path", r.URL.Path, "err", err)
	}
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Materials)
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Sections())
}

func (s *Server) handleSectionProperties(w http.ResponseWriter, r *http.Request) {
	var spec section.Spec
	if !s.decode(w, r, &spec) {
		return
	}
	sec, err := section.Parse(spec)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SectionPropertiesResponse{
		Properties:  sec.Properties(),
		Description: section.Describe(sec),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if !s.decode(w, r, &req) {
		return
	}
	a, err := s.analyze(req.Engine())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, a, req.Report); err != nil {
		s.logger.Error("report generation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "report generation failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam-report.pdf\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("report write failed", "err", err)
	}
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if list == nil {
		list = []project.Project{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var def project.Definition
	if !s.decode(w, r, &def) {
		return
	}
	// Reject definitions the engine would refuse before persisting them
	req, err := def.Request(s.defaults)
	if err == nil {
		_, err = beam.New(req)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p, err := s.store.Save(r.Context(), project.Project{Definition: def})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info("project saved", "id", p.ID, "name", p.Name)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info("project deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalyzeProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	req, err := p.Request(s.defaults)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	a, err := s.analyze(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p.Results = a
	if _, err := s.store.Save(r.Context(), p); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
