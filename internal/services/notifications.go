package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/harentsoaR/clinic-admin-api/internal/models"
)

const textbeltURL = "https://textbelt.com/text"

// NotificationService sends SMS notifications through the Textbelt API.
type NotificationService struct {
	apiKey   string
	endpoint string
	logger   *zap.Logger
}

func NewNotificationService(apiKey string, logger *zap.Logger) *NotificationService {
	return &NotificationService{apiKey: apiKey, endpoint: textbeltURL, logger: logger}
}

// SendDoctorWelcomeSMS tells a newly registered doctor their account is
// active. Runs in a goroutine; delivery failures are logged and never reach
// the API caller.
func (s *NotificationService) SendDoctorWelcomeSMS(doctor *models.Doctor) {
	if s.apiKey == "" {
		s.logger.Info("welcome SMS skipped: no Textbelt key configured",
			zap.String("email", doctor.Email))
		return
	}
	if doctor.Phone == "" {
		s.logger.Info("welcome SMS skipped: doctor has no phone number",
			zap.String("email", doctor.Email))
		return
	}

	body := fmt.Sprintf("Welcome to the clinic, Dr. %s. Your account (%s) is now active.",
		doctor.FullName(), doctor.Email)

	go s.send(doctor.Phone, body)
}

func (s *NotificationService) send(phone, message string) {
	payload, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})

	resp, err := http.Post(s.endpoint, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		s.logger.Error("textbelt request failed", zap.String("phone", phone), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	if success, _ := result["success"].(bool); !success {
		reason, _ := result["error"].(string)
		s.logger.Warn("textbelt rejected SMS", zap.String("phone", phone), zap.String("reason", reason))
		return
	}
	s.logger.Info("welcome SMS sent", zap.String("phone", phone))
}
