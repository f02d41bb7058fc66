package models

import (
	"time"
)

// Committee categories shown as separate sections on the committee page.
const (
	CommitteeCategoryOrganizing = "organizing"
	CommitteeCategoryTechnical  = "technical"
	CommitteeCategoryAdvisory   = "advisory"
)

// CommitteeMember represents the committee_members table.
type CommitteeMember struct {
	MemberID    int     `gorm:"primaryKey;column:member_id" json:"member_id"`
	Name        string  `gorm:"column:name" json:"name"`
	Designation string  `gorm:"column:designation" json:"designation"`
	Affiliation string  `gorm:"column:affiliation" json:"affiliation"`
	Email       string  `gorm:"column:email" json:"email"`
	Category    string  `gorm:"column:category;type:enum('organizing','technical','advisory');default:'organizing'" json:"category"`
	ImageFileID *int    `gorm:"column:image_file_id" json:"image_file_id,omitempty"`
	ImageURL    *string `gorm:"column:image_url" json:"image_url,omitempty"`
	// Plain integer sort key, no uniqueness enforced. Ties resolve by member_id.
	DisplayOrder int  `gorm:"column:display_order" json:"display_order"`
	IsActive     bool `gorm:"column:is_active;default:true" json:"is_active"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// Speaker represents the speakers table (keynote/invited talks).
type Speaker struct {
	SpeakerID    int     `gorm:"primaryKey;column:speaker_id" json:"speaker_id"`
	Name         string  `gorm:"column:name" json:"name"`
	Designation  string  `gorm:"column:designation" json:"designation"`
	Affiliation  string  `gorm:"column:affiliation" json:"affiliation"`
	Email        string  `gorm:"column:email" json:"email"`
	TalkTitle    *string `gorm:"column:talk_title" json:"talk_title,omitempty"`
	TalkAbstract *string `gorm:"column:talk_abstract" json:"talk_abstract,omitempty"`
	Bio          *string `gorm:"column:bio" json:"bio,omitempty"`
	ImageFileID  *int    `gorm:"column:image_file_id" json:"image_file_id,omitempty"`
	ImageURL     *string `gorm:"column:image_url" json:"image_url,omitempty"`
	DisplayOrder int     `gorm:"column:display_order" json:"display_order"`
	IsActive     bool    `gorm:"column:is_active;default:true" json:"is_active"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (CommitteeMember) TableName() string {
	return "committee_members"
}

func (Speaker) TableName() string {
	return "speakers"
}

// ===== Request DTOs =====

type CommitteeMemberCreateRequest struct {
	Name         string `json:"name" binding:"required"`
	Designation  string `json:"designation"`
	Affiliation  string `json:"affiliation" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Category     string `json:"category" binding:"required,oneof=organizing technical advisory"`
	DisplayOrder *int   `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type CommitteeMemberUpdateRequest struct {
	Name         *string `json:"name"`
	Designation  *string `json:"designation"`
	Affiliation  *string `json:"affiliation"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Category     *string `json:"category" binding:"omitempty,oneof=organizing technical advisory"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type SpeakerCreateRequest struct {
	Name         string  `json:"name" binding:"required"`
	Designation  string  `json:"designation"`
	Affiliation  string  `json:"affiliation" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	TalkTitle    *string `json:"talk_title"`
	TalkAbstract *string `json:"talk_abstract"`
	Bio          *string `json:"bio"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type SpeakerUpdateRequest struct {
	Name         *string `json:"name"`
	Designation  *string `json:"designation"`
	Affiliation  *string `json:"affiliation"`
	Email        *string `json:"email" binding:"omitempty,email"`
	TalkTitle    *string `json:"talk_title"`
	TalkAbstract *string `json:"talk_abstract"`
	Bio          *string `json:"bio"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}
