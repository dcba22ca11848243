package service

import "storefront/internal/domain/entity"

// WriteQueue accepts full-document overwrites to apply in the background.
// Enqueue never blocks on the remote store.
type WriteQueue interface {
	Enqueue(write entity.PendingWrite)
	// Latest returns the newest write for the document that has not been
	// applied yet.
	Latest(kind entity.WriteKind, key string) (entity.PendingWrite, bool)
}
