package seed

import (
	"context"
	"testing"

	"asset-allocation-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUsers struct {
	byEmail map[string]*models.User
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) Update(ctx context.Context, user *models.User) error {
	f.byEmail[user.Email] = user
	return nil
}

type fakeAssets struct {
	bySerial map[string]*models.Asset
}

func (f *fakeAssets) Create(ctx context.Context, asset *models.Asset) error {
	asset.ID = uuid.New()
	f.bySerial[asset.SerialNo] = asset
	return nil
}

func (f *fakeAssets) GetBySerialNo(ctx context.Context, serialNo string) (*models.Asset, error) {
	if a, ok := f.bySerial[serialNo]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

const fixture = `
users:
  - name: Alice
    email: Alice@Example.com
    role: manager
    password: wonderland
  - name: Bob
    email: bob@example.com
assets:
  - name: Laptop
    serial_no: SN-100
    warranty: 2027-06-30T00:00:00Z
    invoice_available: true
    purchaser: alice@example.com
  - name: Phone
    serial_no: SN-200
    warranty: 2026-12-31T00:00:00Z
    purchaser: alice@example.com
    owner: BOB@example.com
`

func newStores() (*fakeUsers, *fakeAssets) {
	return &fakeUsers{byEmail: map[string]*models.User{}}, &fakeAssets{bySerial: map[string]*models.Asset{}}
}

func TestLoad(t *testing.T) {
	users, assets := newStores()
	file, err := Parse([]byte(fixture))
	require.NoError(t, err)

	result, err := NewLoader(users, assets).Load(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, &Result{UsersCreated: 2, AssetsCreated: 2}, result)

	alice := users.byEmail["alice@example.com"]
	require.NotNil(t, alice)
	assert.Equal(t, models.UserRoleManager, alice.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.PasswordHash), []byte("wonderland")))

	bob := users.byEmail["bob@example.com"]
	require.NotNil(t, bob)
	assert.Equal(t, models.UserRoleEmployee, bob.Role)
	assert.Empty(t, bob.PasswordHash)

	laptop := assets.bySerial["SN-100"]
	assert.Equal(t, alice.ID, laptop.PurchaserID)
	assert.Equal(t, alice.ID, laptop.OwnerID, "owner defaults to purchaser")
	assert.True(t, laptop.InvoiceAvailable)

	phone := assets.bySerial["SN-200"]
	assert.Equal(t, alice.ID, phone.PurchaserID)
	assert.Equal(t, bob.ID, phone.OwnerID)
}

func TestLoad_SecondRunSkipsExisting(t *testing.T) {
	users, assets := newStores()
	file, err := Parse([]byte(fixture))
	require.NoError(t, err)
	loader := NewLoader(users, assets)

	_, err = loader.Load(context.Background(), file)
	require.NoError(t, err)
	result, err := loader.Load(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, &Result{UsersSkipped: 2, AssetsSkipped: 2}, result)
}

func TestLoad_SetsPasswordOnPasswordlessUser(t *testing.T) {
	users, assets := newStores()
	users.byEmail["bob@example.com"] = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Bob", Email: "bob@example.com", Role: models.UserRoleEmployee}
	users.byEmail["alice@example.com"] = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Alice", Email: "alice@example.com", Role: models.UserRoleManager, PasswordHash: "kept"}
	file, err := Parse([]byte("users:\n  - name: Bob\n    email: bob@example.com\n    password: builder1\n  - name: Alice\n    email: alice@example.com\n    password: other-pass\n"))
	require.NoError(t, err)

	result, err := NewLoader(users, assets).Load(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, &Result{UsersSkipped: 2, PasswordsSet: 1}, result)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.byEmail["bob@example.com"].PasswordHash), []byte("builder1")))
	assert.Equal(t, "kept", users.byEmail["alice@example.com"].PasswordHash)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing email", "users:\n  - name: Nobody\n", "has no email"},
		{"bad role", "users:\n  - name: X\n    email: x@example.com\n    role: overlord\n", "unknown role"},
		{"unknown purchaser", "assets:\n  - serial_no: SN-1\n    purchaser: ghost@example.com\n", "purchaser"},
		{"missing serial", "assets:\n  - name: Thing\n", "no serial number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, assets := newStores()
			file, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = NewLoader(users, assets).Load(context.Background(), file)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("users: [unterminated"))
	assert.Error(t, err)
}
