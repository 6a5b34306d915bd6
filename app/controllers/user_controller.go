package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/ctx"
	"github.com/bargaoui/rideaux/pkg/middleware"
	"github.com/bargaoui/rideaux/pkg/storage"
)

const maxUploadBytes = 8 << 20 // 8 MB

// AdminUserStore is the slice of the user repository the back office needs.
type AdminUserStore interface {
	All(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

// UserController handles profile self-service and the admin user listing.
type UserController struct {
	auth  *services.AuthService
	users AdminUserStore
}

func NewUserController(auth *services.AuthService, users AdminUserStore) *UserController {
	return &UserController{auth: auth, users: users}
}

// Update mutates the caller's own profile. Accepts multipart form data with
// text fields plus an optional "photo" file stored on the configured disk.
func (u *UserController) Update(c *ctx.Context) {
	userID := middleware.UserIDFromCtx(c.Context())

	if err := c.R.ParseMultipartForm(maxUploadBytes); err != nil {
		c.Error(400, "Invalid form data")
		return
	}

	upd := services.ProfileUpdate{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
	}

	if file, header, err := c.FormFile("photo"); err == nil {
		defer file.Close()
		url, err := storeImage(file, header.Filename, "profiles")
		if err != nil {
			fail(c, err)
			return
		}
		upd.PhotoURL = url
	}

	user, err := u.auth.UpdateProfile(c.Context(), userID, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(user)
}

// List returns all users. Password hashes never serialize (json:"-").
// Admin only.
func (u *UserController) List(c *ctx.Context) {
	users, err := u.users.All(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(users)
}

// Delete removes a user account. Admin only.
func (u *UserController) Delete(c *ctx.Context) {
	if err := u.users.Delete(c.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.SuccessMessage("User deleted successfully")
}

// storeImage writes an uploaded image to the configured disk under dir and
// returns its public URL. The extension is whitelisted.
func storeImage(file multipart.File, filename, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", apperr.New(apperr.Validation, "Unsupported image type")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "read upload", err)
	}

	b := make([]byte, 16)
	_, _ = rand.Read(b)
	path := dir + "/" + hex.EncodeToString(b) + ext

	if err := storage.Put(path, data); err != nil {
		return "", apperr.Wrap(apperr.Internal, "store upload", err)
	}
	return storage.URL(path), nil
}
