package dto

// CreateParticipantRequest is the payload for registering a participant
type CreateParticipantRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

// UpdateParticipantRequest is the payload for a partial participant update.
// Nil fields are left unchanged.
type UpdateParticipantRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

// Fields returns the columns to update
func (r UpdateParticipantRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		fields["phone_number"] = *r.PhoneNumber
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	return fields
}
