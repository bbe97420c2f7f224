package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Duration is an optional custody window for an allocation
type Duration struct {
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// Allocation is a request to grant a user rights over an asset.
// AllocatedByID, AllocatedToID, AssetID and AllocationType never change after creation.
type Allocation struct {
	BaseModel
	AllocatedByID        uuid.UUID        `json:"allocatedBy" gorm:"type:uuid;not null;index"`
	AllocatedToID        uuid.UUID        `json:"allocatedTo" gorm:"type:uuid;not null;index"`
	AssetID              uuid.UUID        `json:"asset" gorm:"type:uuid;not null;index"`
	AllocationType       AllocationType   `json:"allocationType" gorm:"type:varchar(50);not null"`
	Purpose              string           `json:"purpose,omitempty" gorm:"type:text"`
	Duration             Duration         `json:"duration" gorm:"embedded;embeddedPrefix:duration_"`
	RequestStatus        *bool            `json:"requestStatus"`
	Status               AllocationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AllocationStatusDate *time.Time       `json:"allocationStatusDate,omitempty"`
	RejectionReason      string           `json:"rejectionReason,omitempty" gorm:"type:text"`
	ApprovedByID         *uuid.UUID       `json:"approvedBy,omitempty" gorm:"type:uuid"`
	RejectedByID         *uuid.UUID       `json:"rejectedBy,omitempty" gorm:"type:uuid"`
	AllocatedRequestDate time.Time        `json:"allocatedRequestDate" gorm:"not null"`

	// Relationships (foreign keys only, never preloaded)
	AllocatedBy *User  `json:"-" gorm:"foreignKey:AllocatedByID;constraint:OnDelete:RESTRICT"`
	AllocatedTo *User  `json:"-" gorm:"foreignKey:AllocatedToID;constraint:OnDelete:RESTRICT"`
	Asset       *Asset `json:"-" gorm:"foreignKey:AssetID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Allocation
func (Allocation) TableName() string {
	return "allocations"
}

// SetStatus moves the allocation to status and keeps RequestStatus in step with it
func (a *Allocation) SetStatus(status AllocationStatus, at time.Time) {
	a.Status = status
	a.RequestStatus = status.RequestStatus()
	a.AllocationStatusDate = &at
}

// BeforeSave derives RequestStatus from Status so the two can never disagree in storage
func (a *Allocation) BeforeSave(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = AllocationStatusPending
	}
	a.RequestStatus = a.Status.RequestStatus()
	return nil
}

// StatusColumns are the only columns a workflow transition writes
var StatusColumns = []string{
	"status",
	"request_status",
	"allocation_status_date",
	"rejection_reason",
	"approved_by_id",
	"rejected_by_id",
	"updated_at",
}

// DetailColumns are the free-form columns a metadata edit may write
var DetailColumns = []string{
	"purpose",
	"duration_start_time",
	"duration_end_time",
	"updated_at",
}
