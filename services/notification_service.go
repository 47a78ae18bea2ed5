package services

import (
	"context"

	"campus_backend/apperr"
	"campus_backend/models"
)

// NotificationService persists notifications. Send is the HTTP path and
// validates the recipient; Notify is the internal fan-out path and trusts
// its caller. There is no delivery beyond storage.
type NotificationService struct {
	notifications NotificationStore
	students      PersonStore
	faculty       PersonStore
}

func NewNotificationService(notifications NotificationStore, students, faculty PersonStore) *NotificationService {
	return &NotificationService{notifications: notifications, students: students, faculty: faculty}
}

func (s *NotificationService) Send(ctx context.Context, recipient, message string) (models.Notification, error) {
	isStudent, err := s.students.Exists(ctx, recipient)
	if err != nil {
		return models.Notification{}, err
	}
	if !isStudent {
		isFaculty, err := s.faculty.Exists(ctx, recipient)
		if err != nil {
			return models.Notification{}, err
		}
		if !isFaculty {
			return models.Notification{}, apperr.ErrInvalidRecipient
		}
	}
	return s.notifications.Insert(ctx, models.Notification{Recipient: recipient, Message: message})
}

func (s *NotificationService) Notify(ctx context.Context, recipient, message string) error {
	_, err := s.notifications.Insert(ctx, models.Notification{Recipient: recipient, Message: message})
	return err
}
