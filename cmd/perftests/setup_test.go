package perftests

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	booking "shareit/internal/bookingService"
	item "shareit/internal/itemService"
	"shareit/internal/models"
	"shareit/internal/repository"
	user "shareit/internal/userService"
)

type fixture struct {
	store    *repository.SQLStore
	users    *user.UserService
	items    *item.ItemService
	bookings *booking.BookingService
	ownerID  int64
	userIDs  []int64
	itemIDs  []int64
}

// setupFixture opens a fresh SQLite store seeded with numUsers bookers and numItems items of one owner
func setupFixture(b *testing.B, numUsers, numItems int) *fixture {
	b.Helper()
	ctx := context.Background()

	store, err := repository.Open(ctx, repository.DriverSQLite, filepath.Join(b.TempDir(), "perf.db"))
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	b.Cleanup(func() { store.Close() })

	f := &fixture{
		store:    store,
		users:    user.NewUserService(store),
		items:    item.NewItemService(store),
		bookings: booking.NewBookingService(store),
	}

	owner, err := f.users.CreateUser(ctx, models.User{Name: "owner", Email: "owner@perf.test"})
	if err != nil {
		b.Fatalf("failed to create owner: %v", err)
	}
	f.ownerID = owner.ID

	for i := 0; i < numUsers; i++ {
		u, err := f.users.CreateUser(ctx, models.User{Name: fmt.Sprintf("user_%d", i), Email: fmt.Sprintf("user_%d@perf.test", i)})
		if err != nil {
			b.Fatalf("failed to create user: %v", err)
		}
		f.userIDs = append(f.userIDs, u.ID)
	}

	for i := 0; i < numItems; i++ {
		it, err := f.items.CreateItem(ctx, owner.ID, models.Item{
			Name:        fmt.Sprintf("Tool %d", i),
			Description: fmt.Sprintf("Load test item number %d", i),
			Available:   true,
		})
		if err != nil {
			b.Fatalf("failed to create item: %v", err)
		}
		f.itemIDs = append(f.itemIDs, it.ID)
	}

	return f
}

// book creates a booking whose window is offset hours from now
func (f *fixture) book(ctx context.Context, userID, itemID int64, offset int) (models.Booking, error) {
	start := time.Now().UTC().Add(time.Duration(offset) * time.Hour)
	return f.bookings.CreateBooking(ctx, userID, itemID, start, start.Add(time.Hour))
}
