package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"

	"github.com/okorolev/liftlog_backend/internal/app/auth"
)

func (s *Server) MountAuth() {
	s.handler.POST("/auth/token", s.IssueToken)
}

type issueTokenReq struct {
	AccessKey string `json:"access_key" validate:"required"`
}

type issueTokenResp struct {
	AccessToken string `json:"access_token"`
}

func (s *Server) IssueToken(c echo.Context) error {
	var b issueTokenReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	agent := useragent.Parse(c.Request().UserAgent())

	ipAddress := c.Request().RemoteAddr
	if c.Request().Header.Get("X-Forwarded-For") != "" {
		ipAddress = c.Request().Header.Get("X-Forwarded-For")
	}

	device := auth.Device{
		Browser:   agent.Name,
		OS:        agent.OS,
		IPAddress: ipAddress,
		Model:     agent.Device,
	}

	token, err := s.authService.IssueToken(device, b.AccessKey)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidAccessKey) {
			return JsonError(c, http.StatusUnauthorized, "invalid access key")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, &issueTokenResp{AccessToken: token})
}
