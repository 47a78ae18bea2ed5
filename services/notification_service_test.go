package services

import (
	"context"
	"testing"

	"campus_backend/apperr"
	"campus_backend/models"
)

func notificationFixture() (*NotificationService, *fakeNotifications) {
	notifications := &fakeNotifications{}
	students := newFakePersons(models.Person{PersonID: "S1000", Email: "student@uni.lk"})
	faculty := newFakePersons(models.Person{PersonID: "F1000", Email: "lecturer@uni.lk"})
	return NewNotificationService(notifications, students, faculty), notifications
}

func TestNotificationSend(t *testing.T) {
	svc, notifications := notificationFixture()

	for _, recipient := range []string{"S1000", "F1000"} {
		n, err := svc.Send(context.Background(), recipient, "Exam rescheduled")
		if err != nil {
			t.Fatalf("Send to %s returned error: %v", recipient, err)
		}
		if n.Recipient != recipient || n.Message != "Exam rescheduled" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	}
	if len(notifications.records) != 2 {
		t.Fatalf("expected 2 stored notifications, got %d", len(notifications.records))
	}
}

func TestNotificationSendUnknownRecipient(t *testing.T) {
	svc, notifications := notificationFixture()

	if _, err := svc.Send(context.Background(), "X9999", "hello"); err != apperr.ErrInvalidRecipient {
		t.Fatalf("expected ErrInvalidRecipient, got %v", err)
	}
	if len(notifications.records) != 0 {
		t.Fatal("notification stored for unknown recipient")
	}
}

// Notify is the internal path used by the timetable fan-out and does not
// validate the recipient.
func TestNotificationNotify(t *testing.T) {
	svc, notifications := notificationFixture()

	if err := svc.Notify(context.Background(), "F1002", "Timetable updated for your course COMP101"); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if len(notifications.records) != 1 {
		t.Fatalf("expected 1 stored notification, got %d", len(notifications.records))
	}
}
