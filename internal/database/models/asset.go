package models

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a tracked piece of equipment. OwnerID changes only through
// approval of an Owner-type allocation.
type Asset struct {
	BaseModel
	Name             string     `json:"name" gorm:"size:200"`
	SerialNo         string     `json:"serialNo" gorm:"not null;size:120;index" validate:"required,max=120"`
	Warranty         time.Time  `json:"warranty" gorm:"not null" validate:"required"`
	InvoiceAvailable bool       `json:"invoiceAvailable" gorm:"not null"`
	InvoiceURL       string     `json:"invoiceUrl,omitempty" gorm:"size:1000"`
	PhotoURL         string     `json:"photoUrl,omitempty" gorm:"size:1000"`
	PurchaserID      uuid.UUID  `json:"purchaser" gorm:"type:uuid;not null;index" validate:"required"`
	OwnerID          uuid.UUID  `json:"owner" gorm:"type:uuid;not null;index" validate:"required"`
	DeviceType       string     `json:"deviceType,omitempty" gorm:"size:100"`
	Availability     string     `json:"availability,omitempty" gorm:"size:100"`
	PurchasedOn      *time.Time `json:"purchasedOn,omitempty"`

	// Relationships (foreign keys only, never preloaded)
	Purchaser *User `json:"-" gorm:"foreignKey:PurchaserID;constraint:OnDelete:RESTRICT"`
	Owner     *User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// AssetDetailColumns are the descriptive columns an asset edit may write.
// owner_id and purchaser_id are deliberately absent.
var AssetDetailColumns = []string{
	"name",
	"serial_no",
	"warranty",
	"invoice_available",
	"invoice_url",
	"photo_url",
	"device_type",
	"availability",
	"purchased_on",
	"updated_at",
}
