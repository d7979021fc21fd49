package reservation

import (
	"context"
	"crypto/rand"
)

const (
	codeLength   = 8
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// codeAllocator draws random booking codes and re-draws on collision
// with a persisted reservation. The loop has no retry cap: with 36^8
// values a collision re-draw is vanishingly rare, and the store's
// unique index on code catches the draw-then-persist race this check
// cannot (see DESIGN.md).
type codeAllocator struct {
	store ReservationStore
}

func (a codeAllocator) Allocate(ctx context.Context) (string, error) {
	for {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		existing, err := a.store.FindByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
}

func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
