// Package services holds the domain logic between controllers and
// repositories. Dependencies are narrow interfaces so tests can substitute
// in-memory fakes.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/config"
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/auth"
	"github.com/bargaoui/rideaux/pkg/logger"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByResetToken(ctx context.Context, digest string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, digest string, expires time.Time) error
	ClearResetToken(ctx context.Context, id primitive.ObjectID) error
}

// Mailer sends a single transactional email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// AuthService implements registration, login and the password-reset flow.
type AuthService struct {
	users  UserStore
	mailer Mailer
	now    func() time.Time
}

func NewAuthService(users UserStore, mailer Mailer) *AuthService {
	return &AuthService{users: users, mailer: mailer, now: time.Now}
}

// WithClock overrides the time source. Test hook for token expiry.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Register creates an account and returns the user plus a session token.
// A duplicate email fails without touching the existing account.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (models.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", apperr.Wrap(apperr.Internal, "hash password", err)
	}

	user := models.NewUser(firstName, lastName, email, hash)
	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return models.User{}, "", apperr.Wrap(apperr.Internal, "sign token", err)
	}
	return *user, token, nil
}

// Login verifies credentials and returns the user plus a session token.
// Unknown email and bad password both surface the same message.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", apperr.New(apperr.Unauthenticated, "Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return models.User{}, "", apperr.Wrap(apperr.Internal, "sign token", err)
	}
	return user, token, nil
}

// RequestPasswordReset issues a fresh single-use token (replacing any
// pending one), stores only its digest with a 10-minute expiry, and emails
// the plaintext token. A send failure clears the stored token and fails the
// whole operation.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, digest, err := auth.NewResetToken()
	if err != nil {
		return apperr.Wrap(apperr.Internal, "generate reset token", err)
	}

	expires := s.now().Add(auth.ResetTokenTTL)
	if err := s.users.SetResetToken(ctx, user.ID, digest, expires); err != nil {
		return err
	}

	resetURL := config.ClientURL() + "/reset-password/" + token
	body := "<p>Vous avez demandé la réinitialisation de votre mot de passe.</p>" +
		"<p><a href=\"" + resetURL + "\">Réinitialiser le mot de passe</a></p>" +
		"<p>Ce lien expire dans 10 minutes.</p>"

	if err := s.mailer.Send(user.Email, "Réinitialisation du mot de passe", body); err != nil {
		// The link never reached the user, so the token must not stay live.
		if clearErr := s.users.ClearResetToken(ctx, user.ID); clearErr != nil {
			logger.Error("auth: clear reset token after send failure", "error", clearErr)
		}
		return apperr.Wrap(apperr.Notification, "Email could not be sent", err)
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	digest := auth.HashResetToken(token)

	user, err := s.users.FindByResetToken(ctx, digest)
	if err != nil || !user.HasActiveResetToken(s.now()) {
		return apperr.New(apperr.Validation, "Invalid or expired token")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "hash password", err)
	}

	user.Password = hash
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = time.Time{}
	if err := s.users.Update(ctx, &user); err != nil {
		return err
	}
	return s.users.ClearResetToken(ctx, user.ID)
}

// ProfileUpdate carries the self-service mutable fields. Empty strings mean
// "leave unchanged"; PhotoURL is set when a new image was uploaded.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	PhotoURL  string
}

// UpdateProfile mutates the caller's own account.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if upd.FirstName != "" {
		user.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		user.LastName = upd.LastName
	}
	if upd.Email != "" {
		user.Email = upd.Email
	}
	if upd.PhotoURL != "" {
		user.ProfileImage = upd.PhotoURL
	}
	if upd.Password != "" {
		hash, err := auth.HashPassword(upd.Password)
		if err != nil {
			return models.User{}, apperr.Wrap(apperr.Internal, "hash password", err)
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
