// Package dto provides data transfer objects for the key endpoints.
package dto

import (
	validation "github.com/jellydator/validation"
)

// GenerateKeysRequest is the body of POST /keys/generate.
type GenerateKeysRequest struct {
	Password string `json:"password"`
}

// Validate checks that a password was sent. Strength is checked by the use case so
// that every violated rule can be reported.
func (r *GenerateKeysRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password, validation.Required),
	)
}

// RetrieveKeysRequest is the body of POST /keys.
type RetrieveKeysRequest struct {
	Password string `json:"password"`
}

// Validate checks that a password was sent.
func (r *RetrieveKeysRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password, validation.Required),
	)
}

// RotateKeysRequest is the body of POST /keys/rotate.
type RotateKeysRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Validate checks that both passwords were sent and differ.
func (r *RotateKeysRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.NotIn(r.CurrentPassword).Error("must differ from the current password"),
		),
	)
}
