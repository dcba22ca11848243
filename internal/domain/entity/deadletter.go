package entity

import "time"

// WriteKind names the document family a background write targets.
type WriteKind string

const (
	WriteKindCart      WriteKind = "cart"
	WriteKindUserOrder WriteKind = "user_order"
)

// PendingWrite is a full-document overwrite waiting to be applied.
// Key identifies the target document within Kind; later writes for the same
// Kind and Key supersede earlier ones.
type PendingWrite struct {
	Kind     WriteKind
	Key      string
	Payload  []byte
	Version  uint64
	QueuedAt time.Time
}

// DeadLetter is a write that exhausted its retries.
type DeadLetter struct {
	ID        uint64
	Kind      WriteKind
	Key       string
	Payload   []byte
	Version   uint64 // version of the parked write, compared against the stored document on replay
	Attempts  int
	LastError string
	FailedAt  time.Time
}
