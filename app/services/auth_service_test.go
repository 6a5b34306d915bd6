package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bargaoui/rideaux/pkg/apperr"
)

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeMailer) {
	users := newFakeUserStore()
	mailer := &fakeMailer{}
	return NewAuthService(users, mailer), users, mailer
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "Amira", "Ben Salah", "amira@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, _, err = svc.Register(ctx, "Autre", "Personne", "amira@example.com", "different456")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Duplicate))
	assert.Equal(t, "User already exists", apperr.Message(err))
}

func TestLoginUniformFailureMessage(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Sami", "Trabelsi", "sami@example.com", "secret123")
	require.NoError(t, err)

	_, _, badPassword := svc.Login(ctx, "sami@example.com", "wrong")
	_, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "secret123")

	require.Error(t, badPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperr.Message(badPassword), apperr.Message(unknownEmail))
	assert.True(t, apperr.IsKind(badPassword, apperr.Unauthenticated))
	assert.True(t, apperr.IsKind(unknownEmail, apperr.Unauthenticated))
}

// resetTokenFromMail pulls the plaintext token out of the reset email body.
func resetTokenFromMail(t *testing.T, body string) string {
	t.Helper()
	_, rest, found := strings.Cut(body, "/reset-password/")
	require.True(t, found, "reset email must carry the reset link")
	token, _, found := strings.Cut(rest, `"`)
	require.True(t, found)
	return token
}

func TestPasswordResetLifecycle(t *testing.T) {
	svc, _, mailer := newAuthFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Leila", "Gharbi", "leila@example.com", "oldpassword")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "leila@example.com"))
	token := resetTokenFromMail(t, mailer.last().Body)

	require.NoError(t, svc.ResetPassword(ctx, token, "newpassword"))

	// Old password is dead, new one works.
	_, _, err = svc.Login(ctx, "leila@example.com", "oldpassword")
	assert.Error(t, err)
	_, _, err = svc.Login(ctx, "leila@example.com", "newpassword")
	assert.NoError(t, err)

	// The token is single-use.
	err = svc.ResetPassword(ctx, token, "thirdpassword")
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired token", apperr.Message(err))
}

func TestPasswordResetExpiredToken(t *testing.T) {
	svc, _, mailer := newAuthFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Karim", "Mabrouk", "karim@example.com", "oldpassword")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "karim@example.com"))
	token := resetTokenFromMail(t, mailer.last().Body)

	// Jump past the 10-minute window.
	svc.WithClock(func() time.Time { return time.Now().Add(11 * time.Minute) })

	err = svc.ResetPassword(ctx, token, "newpassword")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Equal(t, "Invalid or expired token", apperr.Message(err))
}

func TestPasswordResetReplacesPendingToken(t *testing.T) {
	svc, _, mailer := newAuthFixture()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Nour", "Jlassi", "nour@example.com", "oldpassword")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "nour@example.com"))
	first := resetTokenFromMail(t, mailer.last().Body)
	require.NoError(t, svc.RequestPasswordReset(ctx, "nour@example.com"))
	second := resetTokenFromMail(t, mailer.last().Body)

	// Only the latest token is live.
	assert.Error(t, svc.ResetPassword(ctx, first, "newpassword"))
	assert.NoError(t, svc.ResetPassword(ctx, second, "newpassword"))
}

func TestPasswordResetSendFailureClearsToken(t *testing.T) {
	users := newFakeUserStore()
	mailer := &fakeMailer{fail: errors.New("smtp down")}
	svc := NewAuthService(users, mailer)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "Yosra", "Hammami", "yosra@example.com", "secret123")
	require.NoError(t, err)

	err = svc.RequestPasswordReset(ctx, "yosra@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Notification))

	stored := users.get(user.ID)
	assert.Empty(t, stored.ResetPasswordToken, "a token the user never received must not stay live")
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, users, _ := newAuthFixture()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "Mongi", "Bargaoui", "mongi@example.com", "secret123")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID.Hex(), ProfileUpdate{LastName: "Bargaoui Tahar"})
	require.NoError(t, err)
	assert.Equal(t, "Mongi", updated.FirstName)
	assert.Equal(t, "Bargaoui Tahar", updated.LastName)
	assert.Equal(t, "mongi@example.com", updated.Email)

	// Password untouched.
	_, _, err = svc.Login(ctx, "mongi@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "Bargaoui Tahar", users.get(user.ID).LastName)
}
