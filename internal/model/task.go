package model

// Task ids are scoped per board, so the primary key includes the
// owning board's full composite key.
type Task struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false"`
	BoardID     int    `gorm:"primaryKey;autoIncrement:false"`
	BoardUserID string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Status      int    `gorm:"not null"`
}
