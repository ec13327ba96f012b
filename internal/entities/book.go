package entities

import "time"

// Book is a title on the cafe shelves.
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Author      string    `gorm:"not null" json:"author"`
	Year        int       `gorm:"not null" json:"year"`
	IsPublished bool      `gorm:"not null;default:false" json:"is_published"`
	Image       *string   `json:"image"`
	Summary     *string   `gorm:"type:text" json:"summary"`
	Details     *string   `gorm:"type:text" json:"details"`
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`
	UpdatedOn   time.Time `gorm:"autoUpdateTime" json:"updated_on"`

	// Loaded explicitly by the books repository.
	Categories []Category `gorm:"-" json:"categories"`
}

func (Book) TableName() string {
	return "books"
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Detail    *string   `gorm:"type:text" json:"detail"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`
}

func (Category) TableName() string {
	return "categories"
}

// BookCategory links a book to a category. Removing a book drops its links,
// removing a category that is still linked is refused by the database.
type BookCategory struct {
	BookID     uint     `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
	CategoryID uint     `gorm:"primaryKey;autoIncrement:false;index" json:"category_id"`
	Book       Book     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (BookCategory) TableName() string {
	return "book_category"
}
