package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/metrics"
	"github.com/skillhub-api/models"
	"github.com/skillhub-api/repositories"
	"github.com/skillhub-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentLifecycleScenario(t *testing.T) {
	testutil.SetupTestDB(t)
	participants := NewParticipantService()
	classes := NewClassService()
	enrollments := NewEnrollmentService()

	john, err := participants.CreateParticipant(dto.CreateParticipantRequest{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, john.ID)

	design, err := classes.CreateClass(dto.CreateClassRequest{ClassName: "Desain Grafis", Instructor: "Jane Smith"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, design.ID)

	req := dto.CreateEnrollmentRequest{ParticipantID: john.ID, ClassID: design.ID}
	before := time.Now()
	enrollment, err := enrollments.CreateEnrollment(req)
	require.NoError(t, err)
	assert.EqualValues(t, 1, enrollment.ID)
	assert.Equal(t, john.ID, enrollment.ParticipantID)
	assert.Equal(t, design.ID, enrollment.ClassID)
	assert.False(t, enrollment.EnrollmentDate.Before(before))

	_, err = enrollments.CreateEnrollment(req)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.ErrorIs(t, err, repositories.ErrConflict)
	assert.Contains(t, err.Error(), "already enrolled")

	_, err = participants.DeleteParticipant(john.ID)
	require.NoError(t, err)

	all, err := enrollments.ListEnrollments()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateEnrollmentDuplicateWritesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	participant := testutil.CreateParticipant(t, db, "John Doe", "john@example.com")
	class := testutil.CreateClass(t, db, "Desain Grafis", "Jane Smith")
	service := NewEnrollmentService()
	req := dto.CreateEnrollmentRequest{ParticipantID: participant.ID, ClassID: class.ID}

	_, err := service.CreateEnrollment(req)
	require.NoError(t, err)

	prechecked := promtestutil.ToFloat64(metrics.EnrollmentConflicts.WithLabelValues("precheck"))
	_, err = service.CreateEnrollment(req)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, prechecked+1, promtestutil.ToFloat64(metrics.EnrollmentConflicts.WithLabelValues("precheck")))

	count, err := repositories.NewEnrollmentRepository().CountByPair(participant.ID, class.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateEnrollmentSameParticipantDifferentClasses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	john := testutil.CreateParticipant(t, db, "John Doe", "john@example.com")
	jane := testutil.CreateParticipant(t, db, "Jane Roe", "jane@example.com")
	design := testutil.CreateClass(t, db, "Desain Grafis", "Jane Smith")
	coding := testutil.CreateClass(t, db, "Pemrograman Dasar", "John Instructor")
	service := NewEnrollmentService()

	pairs := []dto.CreateEnrollmentRequest{
		{ParticipantID: john.ID, ClassID: design.ID},
		{ParticipantID: john.ID, ClassID: coding.ID},
		{ParticipantID: jane.ID, ClassID: design.ID},
	}
	for _, pair := range pairs {
		_, err := service.CreateEnrollment(pair)
		require.NoError(t, err, "pair %+v", pair)
	}

	byJohn, err := service.ListByParticipant(john.ID)
	require.NoError(t, err)
	assert.Len(t, byJohn, 2)

	byDesign, err := service.ListByClass(design.ID)
	require.NoError(t, err)
	assert.Len(t, byDesign, 2)
}

func TestCreateEnrollmentMissingReferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	participant := testutil.CreateParticipant(t, db, "John Doe", "john@example.com")
	class := testutil.CreateClass(t, db, "Desain Grafis", "Jane Smith")
	service := NewEnrollmentService()

	_, err := service.CreateEnrollment(dto.CreateEnrollmentRequest{ParticipantID: 999, ClassID: class.ID})
	require.ErrorIs(t, err, repositories.ErrReferentialFailure)
	assert.Equal(t, "participant does not exist", err.Error())

	_, err = service.CreateEnrollment(dto.CreateEnrollmentRequest{ParticipantID: participant.ID, ClassID: 999})
	require.ErrorIs(t, err, repositories.ErrReferentialFailure)
	assert.Equal(t, "class does not exist", err.Error())

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReEnrollAfterDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	participant := testutil.CreateParticipant(t, db, "John Doe", "john@example.com")
	class := testutil.CreateClass(t, db, "Desain Grafis", "Jane Smith")
	service := NewEnrollmentService()
	req := dto.CreateEnrollmentRequest{ParticipantID: participant.ID, ClassID: class.ID}

	first, err := service.CreateEnrollment(req)
	require.NoError(t, err)

	deleted, err := service.DeleteEnrollment(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, deleted.ID)

	second, err := service.CreateEnrollment(req)
	require.NoError(t, err)
	assert.Equal(t, participant.ID, second.ParticipantID)

	_, err = service.DeleteEnrollment(first.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestConcurrentEnrollmentsForSamePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	participant := testutil.CreateParticipant(t, db, "John Doe", "john@example.com")
	class := testutil.CreateClass(t, db, "Desain Grafis", "Jane Smith")
	service := NewEnrollmentService()
	req := dto.CreateEnrollmentRequest{ParticipantID: participant.ID, ClassID: class.ID}

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateEnrollment(req)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyEnrolled):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)

	count, err := repositories.NewEnrollmentRepository().CountByPair(participant.ID, class.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDeleteClassRemovesItsEnrollments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	john := testutil.CreateParticipant(t, db, "John Doe", "john@example.com")
	jane := testutil.CreateParticipant(t, db, "Jane Roe", "jane@example.com")
	class := testutil.CreateClass(t, db, "Desain Grafis", "Jane Smith")
	testutil.CreateEnrollment(t, db, john.ID, class.ID)
	testutil.CreateEnrollment(t, db, jane.ID, class.ID)

	cascaded := promtestutil.ToFloat64(metrics.CascadeDeletedEnrollments.WithLabelValues("class"))
	deleted, err := NewClassService().DeleteClass(class.ID)
	require.NoError(t, err)
	assert.Equal(t, class.ID, deleted.ID)
	assert.Equal(t, cascaded+2, promtestutil.ToFloat64(metrics.CascadeDeletedEnrollments.WithLabelValues("class")))

	remaining, err := NewEnrollmentService().ListByClass(class.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = NewClassService().GetClass(class.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
