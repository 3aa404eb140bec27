package engine

import (
	"context"
	"log"

	"collegeschedule_backend/internals/helpers/flash"
)

// FlashNotifier pushes board messages as toasts for one owner.
type FlashNotifier struct {
	Store flash.Store
	Owner string
}

func (n FlashNotifier) Notify(ctx context.Context, level flash.Level, message string) {
	if _, err := n.Store.Push(ctx, n.Owner, level, message); err != nil {
		log.Printf("[WARN] toast for %s dropped: %v", n.Owner, err)
	}
}
