package store

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeviceIDKey is the fixed key holding the device-scoped identifier.
// The value is a bare UUID string, not JSON-wrapped.
const DeviceIDKey = "naja_device_id"

// DeviceID returns the stable identifier scoping locally-stored data to
// this device. It is generated on first call and persisted; repeated
// calls return the same value.
func DeviceID(ctx context.Context, kv KV) (string, error) {
	if id, ok, err := kv.Get(ctx, DeviceIDKey); err == nil && ok && strings.TrimSpace(id) != "" {
		return id, nil
	}
	id := NewDeviceID()
	if err := kv.Set(ctx, DeviceIDKey, id); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}
	return id, nil
}

// NewDeviceID produces a UUID v4 string. If the crypto source is
// unavailable it falls back to a math/rand identifier with the same
// textual shape. The id is not a security credential, so a weak source
// is acceptable; it only has to be stable and unlikely to collide.
func NewDeviceID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return pseudoUUID()
}

func pseudoUUID() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var b [16]byte
	for i := range b {
		b[i] = byte(rng.Intn(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
