package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "masjidhub_backend/internals/helpers"
)

func validRequest() RegistrationRequest {
	return RegistrationRequest{
		FullName:   "John Doe",
		Phone:      "0812345678901",
		Email:      "john@gmail.com",
		ActivityID: "6a1d2f30-9a7b-4c51-8f24-0d3c5b1a9e77",
	}
}

func TestRegistrationRequestValid(t *testing.T) {
	assert.Nil(t, helper.ValidateStruct(validRequest()))
}

func TestRegistrationRequestRejectsShortPhone(t *testing.T) {
	req := validRequest()
	req.Phone = "12345"

	fieldErrors := helper.ValidateStruct(req)
	assert.Contains(t, fieldErrors, "phone")
}

func TestRegistrationRequestRejectsNonNumericPhone(t *testing.T) {
	req := validRequest()
	req.Phone = "08123abc901"

	fieldErrors := helper.ValidateStruct(req)
	assert.Contains(t, fieldErrors, "phone")
}

func TestRegistrationRequestRejectsBadEmail(t *testing.T) {
	for _, email := range []string{"", "john", "john@", "@gmail.com"} {
		req := validRequest()
		req.Email = email

		fieldErrors := helper.ValidateStruct(req)
		assert.Contains(t, fieldErrors, "email", "email %q seharusnya ditolak", email)
	}
}

func TestRegistrationRequestRejectsBadActivityID(t *testing.T) {
	req := validRequest()
	req.ActivityID = "bukan-uuid"

	fieldErrors := helper.ValidateStruct(req)
	assert.Contains(t, fieldErrors, "activityid")
}

func TestRegistrationRequestRejectsShortName(t *testing.T) {
	req := validRequest()
	req.FullName = "Jo"

	fieldErrors := helper.ValidateStruct(req)
	assert.Contains(t, fieldErrors, "fullname")
}
