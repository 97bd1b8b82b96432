package dto

// CreateClassRequest is the payload for creating a training class
type CreateClassRequest struct {
	ClassName   string  `json:"className" binding:"required,notblank"`
	Description *string `json:"description"`
	Instructor  string  `json:"instructor" binding:"required,notblank"`
}

// UpdateClassRequest is the payload for a partial class update
type UpdateClassRequest struct {
	ClassName   *string `json:"className" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	Instructor  *string `json:"instructor" binding:"omitempty,notblank"`
}

// Fields returns the columns to update
func (r UpdateClassRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.ClassName != nil {
		fields["class_name"] = *r.ClassName
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Instructor != nil {
		fields["instructor"] = *r.Instructor
	}
	return fields
}
