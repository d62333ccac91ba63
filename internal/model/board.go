package model

// Board ids are scoped per owner, so the primary key is (id, user_id).
type Board struct {
	ID     int    `gorm:"primaryKey;autoIncrement:false"`
	UserID string `gorm:"primaryKey"`
	Name   string `gorm:"not null"`

	Tasks []Task `gorm:"foreignKey:BoardID,BoardUserID;references:ID,UserID;constraint:OnDelete:CASCADE"`
}
