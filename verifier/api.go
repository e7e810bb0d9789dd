package verifier

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/alovak/cardcheck/verifier/models"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 64 << 10

// API is a HTTP API for the verifier service
type API struct {
	verifier *Service
}

func NewAPI(verifier *Service) *API {
	return &API{
		verifier: verifier,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/verify", func(r chi.Router) {
		r.Post("/", a.verify)
		// Raw ISO 8583:1987 ASCII message in the body
		r.Post("/iso8583", a.verifyISO8583)
	})
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	req := models.VerifyRequest{}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := a.verifier.Verify(req.Number)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (a *API) verifyISO8583(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := a.verifier.VerifyISO8583(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrBadInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
