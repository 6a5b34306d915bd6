package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

func TestBookConsultation(t *testing.T) {
	recorder := &fakeConsultationRecorder{}
	notifier := &fakeConsultationNotifier{}
	svc := NewConsultationService(recorder, notifier)

	c := models.Consultation{
		Name:    "Ines Maalej",
		Email:   "ines@example.com",
		Phone:   "+216 22 333 444",
		Message: "Je souhaite un devis pour des rideaux sur mesure.",
	}
	require.NoError(t, svc.Book(context.Background(), &c))

	require.Len(t, recorder.bookings, 1)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "ines@example.com", notifier.calls[0].Email)
}

func TestBookConsultationMissingField(t *testing.T) {
	recorder := &fakeConsultationRecorder{}
	svc := NewConsultationService(recorder, &fakeConsultationNotifier{})

	c := models.Consultation{
		Name:  "Ines Maalej",
		Email: "ines@example.com",
		// phone and message missing
	}
	err := svc.Book(context.Background(), &c)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Equal(t, "All fields are required", apperr.Message(err))
	assert.Empty(t, recorder.bookings)
}
