package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	UserID   int64  `json:"user_id" binding:"required,id"`
	Password string `json:"password" binding:"required,pwd"`
	Comment  string `json:"comment" binding:"omitempty,notblank"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&loginForm{Comment: "   "})
	details := ToDetails(err)

	assert.Equal(t, "is required", details["user_id"])
	assert.Equal(t, "is required", details["password"])
	assert.Equal(t, "must not be blank", details["comment"])
}

func TestToDetails_PasswordTooLong(t *testing.T) {
	Init()

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	err := binding.Validator.ValidateStruct(&loginForm{UserID: 1, Password: string(long)})
	assert.Equal(t, "must be at most 72 bytes", ToDetails(err)["password"])
}

func TestToDetails_Payload(t *testing.T) {
	var v loginForm
	err := json.Unmarshal([]byte(`{"user_id": "abc"}`), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Nil(t, ToDetails(nil))
}
