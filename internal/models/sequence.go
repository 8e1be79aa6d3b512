package models

// Sequence is a named counter, incremented atomically in the database.
type Sequence struct {
	Key string `gorm:"primaryKey"`
	Val uint
}
