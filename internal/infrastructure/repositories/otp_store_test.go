package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestOTPStoreImpl_PutAndGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, "mai@example.com", "042137", 60*time.Second); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	code, err := store.Get(ctx, "mai@example.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if code != "042137" {
		t.Errorf("expected code 042137, got %s", code)
	}
}

func TestOTPStoreImpl_Get_Missing(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client)

	_, err := store.Get(context.Background(), "never-set@example.com")
	if !errors.Is(err, domain.ErrCodeExpired) {
		t.Errorf("Get() error = %v, want ErrCodeExpired", err)
	}
}

func TestOTPStoreImpl_Get_AfterExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewOTPStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, "mai@example.com", "042137", 60*time.Second); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	mr.FastForward(61 * time.Second)

	_, err := store.Get(ctx, "mai@example.com")
	if !errors.Is(err, domain.ErrCodeExpired) {
		t.Errorf("Get() error = %v, want ErrCodeExpired", err)
	}
}

func TestOTPStoreImpl_Put_Overwrites(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewOTPStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, "mai@example.com", "111111", 60*time.Second); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Let part of the first TTL pass, then overwrite.
	mr.FastForward(40 * time.Second)

	if err := store.Put(ctx, "mai@example.com", "222222", 60*time.Second); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	code, err := store.Get(ctx, "mai@example.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if code != "222222" {
		t.Errorf("expected replacement code 222222, got %s", code)
	}

	// The overwrite reset the TTL: past the original expiry but within the
	// new window, the new code is still live.
	mr.FastForward(40 * time.Second)
	code, err = store.Get(ctx, "mai@example.com")
	if err != nil {
		t.Fatalf("Get() after original expiry error = %v", err)
	}
	if code != "222222" {
		t.Errorf("expected code 222222 within the refreshed TTL, got %s", code)
	}
}

func TestOTPStoreImpl_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, "mai@example.com", "042137", 60*time.Second); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Delete(ctx, "mai@example.com"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "mai@example.com"); !errors.Is(err, domain.ErrCodeExpired) {
		t.Errorf("Get() after delete error = %v, want ErrCodeExpired", err)
	}

	// Idempotent removal.
	if err := store.Delete(ctx, "mai@example.com"); err != nil {
		t.Errorf("Delete() of absent key error = %v, want nil", err)
	}
}

func TestOTPStoreImpl_Unavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewOTPStore(client)
	ctx := context.Background()

	mr.Close()

	if err := store.Put(ctx, "mai@example.com", "042137", 60*time.Second); err == nil {
		t.Error("Put() against a dead store should surface an error")
	}
	if _, err := store.Get(ctx, "mai@example.com"); errors.Is(err, domain.ErrCodeExpired) || err == nil {
		t.Error("Get() against a dead store should surface an infrastructure error, not ErrCodeExpired")
	}
}
