package model

import "time"

// DeadLetterModel is the GORM struct for the 'dead_letters' table.
type DeadLetterModel struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Kind      string    `gorm:"column:kind;type:varchar(32);not null;index:idx_dead_letters_kind_key"`
	Key       string    `gorm:"column:doc_key;type:varchar(255);not null;index:idx_dead_letters_kind_key"`
	Payload   []byte    `gorm:"column:payload;not null"`
	Version   uint64    `gorm:"column:version;not null;default:0"`
	Attempts  int       `gorm:"column:attempts;not null;default:0"`
	LastError string    `gorm:"column:last_error;type:text"`
	FailedAt  time.Time `gorm:"column:failed_at;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DeadLetterModel) TableName() string {
	return "dead_letters"
}
