package auth

import (
	"log/slog"
)

type Service struct {
	logger     *slog.Logger
	Authorizer *Authorizer
}

func NewService(authorizer *Authorizer, logger *slog.Logger) *Service {
	return &Service{
		logger:     logger,
		Authorizer: authorizer,
	}
}

// IssueToken validates the access key and returns a fresh bearer token.
func (s *Service) IssueToken(device Device, accessKey string) (string, error) {
	if err := s.Authorizer.Authorize(accessKey); err != nil {
		s.logger.Warn("rejected token request",
			"browser", device.Browser,
			"os", device.OS,
			"ip_address", device.IPAddress,
		)
		return "", err
	}

	token, err := s.Authorizer.GenerateAccessToken()
	if err != nil {
		return "", err
	}

	s.logger.Info("issued access token",
		"browser", device.Browser,
		"os", device.OS,
		"device_model", device.Model,
		"ip_address", device.IPAddress,
	)
	return token, nil
}
