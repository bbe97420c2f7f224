// Package seed loads users and assets from a YAML fixture file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"asset-allocation-backend/internal/auth"
	"asset-allocation-backend/internal/database/models"
	"asset-allocation-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// UserData is a user entry of the seed file
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

// AssetData is an asset entry of the seed file. Users are referenced by email.
type AssetData struct {
	Name             string     `yaml:"name"`
	SerialNo         string     `yaml:"serial_no"`
	Warranty         time.Time  `yaml:"warranty"`
	InvoiceAvailable bool       `yaml:"invoice_available"`
	InvoiceURL       string     `yaml:"invoice_url,omitempty"`
	PhotoURL         string     `yaml:"photo_url,omitempty"`
	Purchaser        string     `yaml:"purchaser"`
	Owner            string     `yaml:"owner,omitempty"`
	DeviceType       string     `yaml:"device_type,omitempty"`
	Availability     string     `yaml:"availability,omitempty"`
	PurchasedOn      *time.Time `yaml:"purchased_on,omitempty"`
}

// File is the top-level layout of a seed file
type File struct {
	Users  []UserData  `yaml:"users"`
	Assets []AssetData `yaml:"assets"`
}

// UserStore is the subset of the user repository the loader needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// AssetStore is the subset of the asset repository the loader needs
type AssetStore interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetBySerialNo(ctx context.Context, serialNo string) (*models.Asset, error)
}

// Result counts what a load created and what already existed
type Result struct {
	UsersCreated  int
	UsersSkipped  int
	PasswordsSet  int
	AssetsCreated int
	AssetsSkipped int
}

// ReadFile parses a seed file from disk
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &file, nil
}

// Loader writes seed data through the repositories
type Loader struct {
	users  UserStore
	assets AssetStore
}

// NewLoader creates a loader
func NewLoader(users UserStore, assets AssetStore) *Loader {
	return &Loader{users: users, assets: assets}
}

// Load creates the users and assets of file that do not exist yet.
// Users are matched by lowercased email and assets by serial number.
func (l *Loader) Load(ctx context.Context, file *File) (*Result, error) {
	log := logger.WithContext(ctx)
	result := &Result{}

	for _, u := range file.Users {
		email := normalizeEmail(u.Email)
		if email == "" {
			return result, fmt.Errorf("user %q has no email", u.Name)
		}
		if existing, err := l.users.GetByEmail(ctx, email); err == nil {
			result.UsersSkipped++
			// existing users only gain a password, they never have one replaced
			if existing.PasswordHash == "" && u.Password != "" {
				hash, err := auth.HashPassword(u.Password)
				if err != nil {
					return result, err
				}
				existing.PasswordHash = hash
				if err := l.users.Update(ctx, existing); err != nil {
					return result, fmt.Errorf("set password for %s: %w", email, err)
				}
				result.PasswordsSet++
			}
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("look up user %s: %w", email, err)
		}

		role := models.UserRole(strings.ToLower(u.Role))
		if role == "" {
			role = models.UserRoleEmployee
		}
		if !role.IsValid() {
			return result, fmt.Errorf("user %s has unknown role %q", email, u.Role)
		}

		user := &models.User{Name: u.Name, Email: email, Role: role}
		if u.Password != "" {
			hash, err := auth.HashPassword(u.Password)
			if err != nil {
				return result, err
			}
			user.PasswordHash = hash
		}
		if err := l.users.Create(ctx, user); err != nil {
			return result, fmt.Errorf("create user %s: %w", email, err)
		}
		result.UsersCreated++
		log.WithField("email", email).Debug("Seeded user")
	}

	for _, a := range file.Assets {
		if a.SerialNo == "" {
			return result, fmt.Errorf("asset %q has no serial number", a.Name)
		}
		if _, err := l.assets.GetBySerialNo(ctx, a.SerialNo); err == nil {
			result.AssetsSkipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("look up asset %s: %w", a.SerialNo, err)
		}

		purchaser, err := l.users.GetByEmail(ctx, normalizeEmail(a.Purchaser))
		if err != nil {
			return result, fmt.Errorf("asset %s: purchaser %s: %w", a.SerialNo, a.Purchaser, err)
		}
		owner := purchaser
		if a.Owner != "" {
			owner, err = l.users.GetByEmail(ctx, normalizeEmail(a.Owner))
			if err != nil {
				return result, fmt.Errorf("asset %s: owner %s: %w", a.SerialNo, a.Owner, err)
			}
		}

		asset := &models.Asset{
			Name:             a.Name,
			SerialNo:         a.SerialNo,
			Warranty:         a.Warranty,
			InvoiceAvailable: a.InvoiceAvailable,
			InvoiceURL:       a.InvoiceURL,
			PhotoURL:         a.PhotoURL,
			PurchaserID:      purchaser.ID,
			OwnerID:          owner.ID,
			DeviceType:       a.DeviceType,
			Availability:     a.Availability,
			PurchasedOn:      a.PurchasedOn,
		}
		if err := l.assets.Create(ctx, asset); err != nil {
			return result, fmt.Errorf("create asset %s: %w", a.SerialNo, err)
		}
		result.AssetsCreated++
		log.WithField("serial_no", a.SerialNo).Debug("Seeded asset")
	}

	return result, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
