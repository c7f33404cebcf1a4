package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) MountStats() {
	loginRequired := LoginRequired(s.authService.Authorizer)
	s.handler.GET("/stats/personal-record", s.GetPersonalRecord, loginRequired)
	s.handler.GET("/stats/volume", s.GetVolumeSince, loginRequired)
	s.handler.GET("/stats/muscles", s.GetMusclesSince, loginRequired)
}

type PersonalRecordResponse struct {
	Record *SetModel `json:"record"`
}

func (s *Server) GetPersonalRecord(c echo.Context) error {
	record := s.statsService.PersonalRecord()
	if record == nil {
		return c.JSON(http.StatusOK, PersonalRecordResponse{})
	}

	m := newSetModel(record)
	return c.JSON(http.StatusOK, PersonalRecordResponse{Record: &m})
}

type sinceRequest struct {
	Since string `query:"since" validate:"omitempty"`
}

// parseSince reads the optional since query parameter; absence means the
// whole history.
func parseSince(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

type VolumeSinceResponse struct {
	Since       *time.Time `json:"since,omitempty"`
	TotalVolume string     `json:"total_volume"`
}

func (s *Server) GetVolumeSince(c echo.Context) error {
	var req sinceRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	since, err := parseSince(req.Since)
	if err != nil {
		return JsonError(c, http.StatusBadRequest, "since must be an RFC 3339 timestamp")
	}

	resp := VolumeSinceResponse{
		TotalVolume: s.statsService.VolumeSince(since).String(),
	}
	if !since.IsZero() {
		resp.Since = &since
	}
	return c.JSON(http.StatusOK, resp)
}

type MusclesSinceResponse struct {
	Since   *time.Time `json:"since,omitempty"`
	Muscles []string   `json:"muscles"`
}

func (s *Server) GetMusclesSince(c echo.Context) error {
	var req sinceRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	since, err := parseSince(req.Since)
	if err != nil {
		return JsonError(c, http.StatusBadRequest, "since must be an RFC 3339 timestamp")
	}

	resp := MusclesSinceResponse{
		Muscles: s.statsService.MusclesSince(since),
	}
	if !since.IsZero() {
		resp.Since = &since
	}
	return c.JSON(http.StatusOK, resp)
}
