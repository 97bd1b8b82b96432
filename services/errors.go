package services

import (
	"github.com/skillhub-api/repositories"
)

// ErrAlreadyEnrolled is returned when the participant already has an
// enrollment for the class, whether caught by the lookup or by the unique index
var ErrAlreadyEnrolled = repositories.NewError(
	repositories.ErrConflict,
	"participant already enrolled in this class",
	nil,
)

var (
	errParticipantMissing = repositories.NewError(
		repositories.ErrReferentialFailure,
		"participant does not exist",
		nil,
	)
	errClassMissing = repositories.NewError(
		repositories.ErrReferentialFailure,
		"class does not exist",
		nil,
	)
)
