package helpers

import (
	"regexp"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := GenerateOrderNumber()
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
		seen[number] = true
	}

	// 100 draws from a 36^8 space should not collide.
	assert.Equal(t, 100, len(seen))
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash := HashPassword("s3cret-password")
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, PasswordCompare(hash, []byte("s3cret-password")))
	assert.False(t, PasswordCompare(hash, []byte("wrong-password")))
	assert.False(t, PasswordCompare("not-a-hash", []byte("s3cret-password")))
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "chrono-saga-2", GenerateSlug("Chrono Saga 2"))
	assert.Equal(t, "hello-world", GenerateSlug("Héllo, Wörld!"))
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Name   string `validate:"required"`
		Email  string `validate:"required,email"`
		Rating int    `validate:"min=1,max=5"`
	}

	err := validator.New().Struct(&form{Email: "not-an-email", Rating: 9})
	require.Error(t, err)

	validationErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	messages := FormatValidationErrors(validationErrs)
	assert.Equal(t, "Name is required.", messages["name"])
	assert.Equal(t, "Email must be a valid email address.", messages["email"])
	assert.Equal(t, "Rating must be at most 5.", messages["rating"])
}
