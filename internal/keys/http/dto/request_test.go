package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeysRequest_Validate(t *testing.T) {
	assert.NoError(t, (&GenerateKeysRequest{Password: "anything"}).Validate())
	assert.Error(t, (&GenerateKeysRequest{}).Validate())
}

func TestRetrieveKeysRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RetrieveKeysRequest{Password: "anything"}).Validate())
	assert.Error(t, (&RetrieveKeysRequest{}).Validate())
}

func TestRotateKeysRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RotateKeysRequest
		wantErr bool
	}{
		{"Valid", RotateKeysRequest{CurrentPassword: "old-pass", NewPassword: "new-pass"}, false},
		{"MissingCurrent", RotateKeysRequest{NewPassword: "new-pass"}, true},
		{"MissingNew", RotateKeysRequest{CurrentPassword: "old-pass"}, true},
		{"SamePassword", RotateKeysRequest{CurrentPassword: "same-pass", NewPassword: "same-pass"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
