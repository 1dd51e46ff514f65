package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

func sampleSnapshot(seed uint64) *plan.Snapshot {
	lot := plan.NewHouseLot(geom.Vec(10, 6))
	lot.GroundFloor().AddRoom(geom.NewRect(1, 1, 4, 4), plan.LivingRoom)
	lot.GroundFloor().AddRoom(geom.NewRect(5, 1, 4, 4), plan.Bedroom)
	s := lot.Snapshot()
	s.Seed = seed
	s.Component = "two-room"
	return s
}

// exercise runs the contract every backend must satisfy.
func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	first := sampleSnapshot(1)
	first.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	id1, err := s.Save(ctx, first)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := errors.ValidatePlanID(id1); err != nil {
		t.Errorf("Save assigned %q: %v", id1, err)
	}

	second := sampleSnapshot(1 << 63)
	second.CreatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	id2, err := s.Save(ctx, second)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id1 == id2 {
		t.Fatal("IDs must be unique")
	}

	got, err := s.Get(ctx, id2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Seed != 1<<63 || got.Component != "two-room" {
		t.Errorf("metadata = %d %q", got.Seed, got.Component)
	}
	lot, err := plan.FromSnapshot(got)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if lot.GroundFloor().RoomCount() != 2 {
		t.Errorf("rooms = %d, want 2", lot.GroundFloor().RoomCount())
	}

	list, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != id2 || list[1].ID != id1 {
		t.Errorf("List order wrong: %v", list)
	}
	if list, _ := s.List(ctx, 1); len(list) != 1 {
		t.Errorf("List(1) returned %d", len(list))
	}

	if err := s.Delete(ctx, id1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, id1); !errors.Is(err, errors.ErrCodePlanNotFound) {
		t.Errorf("Get after Delete: %v", err)
	}
	if err := s.Delete(ctx, id1); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	snap := sampleSnapshot(5)
	id, err := s.Save(context.Background(), snap)
	if err != nil {
		t.Fatal(err)
	}
	snap.Floors[0].Rooms[0].Type = plan.Garden

	got, _ := s.Get(context.Background(), id)
	if got.Floors[0].Rooms[0].Type != plan.LivingRoom {
		t.Error("store aliases the caller's snapshot")
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)
}

func TestFileStoreRejectsBadIDs(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(context.Background(), "../../etc/passwd"); !errors.Is(err, errors.ErrCodePlanNotFound) {
		t.Errorf("Get(traversal) = %v", err)
	}
	snap := sampleSnapshot(1)
	snap.ID = "not-a-uuid"
	if _, err := s.Save(context.Background(), snap); err == nil {
		t.Error("Save should reject a malformed ID")
	}
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("ARCHITECTUS_TEST_MONGO")
	if uri == "" {
		t.Skip("ARCHITECTUS_TEST_MONGO not set")
	}
	ctx := context.Background()
	s, err := NewMongoStore(ctx, uri, "architectus_test_"+time.Now().Format("150405"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = s.coll.Database().Drop(ctx)
		_ = s.Close()
	})
	exercise(t, s)
}
