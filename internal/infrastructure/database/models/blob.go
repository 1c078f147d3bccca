package models

import "time"

// Blob is one named, serialized document.
type Blob struct {
	Key   string    `json:"key" gorm:"primaryKey;type:text"`
	Value string    `json:"value" gorm:"type:jsonb;not null"`
	CDate time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate time.Time `json:"mdate" gorm:"autoUpdateTime"`
}
