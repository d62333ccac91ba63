package model

// User is keyed by its opaque bearer token: the token handed out at
// signup is the primary key.
type User struct {
	ID     string  `gorm:"primaryKey"`
	Boards []Board `gorm:"foreignKey:UserID;references:ID"`
}
