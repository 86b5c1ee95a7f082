package gorm

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Image       string    `gorm:"column:image" json:"image"`
	Date        string    `gorm:"column:date" json:"date"`
	SignupURL   string    `gorm:"column:signup_url" json:"signup_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = NewID()
	}
	return nil
}

type BlogCategory struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex" json:"name"`
	Slug      string    `gorm:"column:slug" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BlogCategory) TableName() string {
	return "blog_categories"
}

func (c *BlogCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

type Blog struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Title      string    `gorm:"column:title" json:"title"`
	Content    string    `gorm:"column:content" json:"content"`
	Excerpt    string    `gorm:"column:excerpt" json:"excerpt"`
	Image      string    `gorm:"column:image" json:"image"`
	Date       string    `gorm:"column:date" json:"date"`
	Author     string    `gorm:"column:author" json:"author"`
	ReadTime   string    `gorm:"column:read_time" json:"read_time"`
	CategoryID *string   `gorm:"column:category_id" json:"category_id"`
	Featured   bool      `gorm:"column:featured" json:"featured"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = NewID()
	}
	return nil
}

// InCategory reports whether the blog references categoryID.
func (b *Blog) InCategory(categoryID string) bool {
	return b.CategoryID != nil && *b.CategoryID == categoryID
}
