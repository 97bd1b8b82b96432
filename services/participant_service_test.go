package services

import (
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/metrics"
	"github.com/skillhub-api/repositories"
	"github.com/skillhub-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateParticipantKeepsOmittedFields(t *testing.T) {
	testutil.SetupTestDB(t)
	service := NewParticipantService()

	phone := "08123456789"
	created, err := service.CreateParticipant(dto.CreateParticipantRequest{
		Name:        "John Doe",
		Email:       "john@example.com",
		PhoneNumber: &phone,
	})
	require.NoError(t, err)

	email := "john.doe@example.com"
	updated, err := service.UpdateParticipant(created.ID, dto.UpdateParticipantRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, email, updated.Email)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, phone, *updated.PhoneNumber)

	_, err = service.UpdateParticipant(created.ID+1, dto.UpdateParticipantRequest{Email: &email})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteParticipantCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	participant := testutil.CreateParticipant(t, db, "John Doe", "john@example.com")
	design := testutil.CreateClass(t, db, "Desain Grafis", "Jane Smith")
	coding := testutil.CreateClass(t, db, "Pemrograman Dasar", "John Instructor")
	testutil.CreateEnrollment(t, db, participant.ID, design.ID)
	testutil.CreateEnrollment(t, db, participant.ID, coding.ID)
	service := NewParticipantService()

	cascaded := promtestutil.ToFloat64(metrics.CascadeDeletedEnrollments.WithLabelValues("participant"))
	deleted, err := service.DeleteParticipant(participant.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", deleted.Name)
	assert.Equal(t, cascaded+2, promtestutil.ToFloat64(metrics.CascadeDeletedEnrollments.WithLabelValues("participant")))

	remaining, err := NewEnrollmentService().ListByParticipant(participant.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = service.GetParticipant(participant.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = service.DeleteParticipant(participant.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
