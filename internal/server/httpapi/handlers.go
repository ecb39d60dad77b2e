package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/beautyease/beautyease/internal/server/models"
	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

// decodeAndValidate decodes the JSON body into v and runs struct validation.
// Failures come back as ErrValidation so writeError answers 400.
func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", shared.ErrValidation)
	}
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req wire.RegisterRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	pair, err := s.users.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		s.logger.Error(r.Context(), "registration failed", "email", req.Email, "error", err.Error())
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", req.Email)
	writeJSON(w, http.StatusCreated, wire.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       pair.UserID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req wire.LoginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	pair, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       pair.UserID,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req wire.RefreshRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	pair, err := s.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       pair.UserID,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req wire.LogoutRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.users.Logout(r.Context(), req.RefreshToken); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func profileToWire(p *models.Profile) wire.Profile {
	return wire.Profile{
		ID:           p.UserID,
		Email:        p.Email,
		FullName:     p.FullName,
		SkinType:     p.SkinType,
		SkinConcerns: p.SkinConcerns,
		AgeRange:     p.AgeRange,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.Get(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileToWire(profile))
}

func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	var patch wire.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", shared.ErrValidation))
		return
	}

	profile, err := s.profiles.Update(r.Context(), userIDFromContext(r.Context()), &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileToWire(profile))
}

func scanToWire(m *models.Scan) wire.Scan {
	return wire.Scan{
		ID:           m.ID,
		AnalysisDate: m.AnalysisDate,
		SkinType:     m.SkinType,
		Concerns:     m.Concerns,
		Score:        m.Score,
		Confidence:   m.Confidence,
		Recommendations: wire.Recommendations{
			Products:           m.Products,
			Treatments:         m.Treatments,
			HomeRemedies:       m.HomeRemedies,
			DoctorConsultation: m.NeedsDoctor,
		},
		ImageKey: m.ImageKey,
	}
}

func (s *Server) handleSaveScan(w http.ResponseWriter, r *http.Request) {
	var req wire.SaveScanRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	scan, err := s.scans.Save(r.Context(), userIDFromContext(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, scanToWire(scan))
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := s.scans.List(r.Context(), userIDFromContext(r.Context()), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]wire.Scan, 0, len(list))
	for _, m := range list {
		out = append(out, scanToWire(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.media.GetPresignedPutURL(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), "presign failed", "error", err.Error())
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.UploadURLResponse{Key: key, URL: url})
}

func (s *Server) handleDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, fmt.Errorf("%w: key is required", shared.ErrValidation))
		return
	}

	url, err := s.media.GetPresignedGetURL(r.Context(), key)
	if err != nil {
		s.logger.Error(r.Context(), "presign failed", "error", err.Error())
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.DownloadURLResponse{URL: url})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
