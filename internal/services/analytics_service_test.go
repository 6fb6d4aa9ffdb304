package services

import (
	"fmt"
	"testing"

	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
)

func TestOverview(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	alice := createUser(t, db, "alice@example.com", "Alice")
	bob := createUser(t, db, "bob@example.com", "Bob")

	createPet(t, db, alice, "Rex", "dog", "Berlin")
	createPet(t, db, alice, "Fido", "dog", "Berlin")
	cat := createPet(t, db, alice, "Pixel", "cat", "Hamburg")

	createRequest(t, db, cat, bob, models.RequestPending)
	createRequest(t, db, createPet(t, db, alice, "Nemo", "fish", "Kiel"), bob, models.RequestApproved)

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	typeCounts := map[string]int64{}
	for _, c := range overview.PetTypes {
		typeCounts[c.PetType] = c.Count
	}
	if typeCounts["dog"] != 2 || typeCounts["cat"] != 1 || typeCounts["fish"] != 1 {
		t.Errorf("pet type counts = %v", typeCounts)
	}

	statusCounts := map[string]int64{}
	for _, c := range overview.RequestStatuses {
		statusCounts[c.Status] = c.Count
	}
	if statusCounts[models.RequestPending] != 1 || statusCounts[models.RequestApproved] != 1 {
		t.Errorf("status counts = %v", statusCounts)
	}

	if len(overview.TopUsers) != 2 {
		t.Fatalf("top users = %d, want 2", len(overview.TopUsers))
	}
	// Alice owns the most pets and leads the list.
	if overview.TopUsers[0].Email != alice.Email {
		t.Errorf("top user = %s, want %s", overview.TopUsers[0].Email, alice.Email)
	}
	if overview.TopUsers[0].PetCount != 4 {
		t.Errorf("top user pet count = %d, want 4", overview.TopUsers[0].PetCount)
	}
	if overview.TopUsers[1].RequestCount != 2 {
		t.Errorf("bob request count = %d, want 2", overview.TopUsers[1].RequestCount)
	}
}

func TestTopUsersLimitAndDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	for i := 0; i < 12; i++ {
		u := createUser(t, db, fmt.Sprintf("user%d@example.com", i), fmt.Sprintf("U%d", i))
		for j := 0; j <= i%3; j++ {
			createPet(t, db, u, fmt.Sprintf("pet-%d-%d", i, j), "dog", "Berlin")
		}
	}
	ghost := createUser(t, db, "ghost@example.com", "Ghost")
	if err := db.Delete(ghost).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if len(overview.TopUsers) != 10 {
		t.Errorf("top users = %d, want 10", len(overview.TopUsers))
	}
	for _, u := range overview.TopUsers {
		if u.Email == "ghost@example.com" {
			t.Error("soft-deleted user listed in top users")
		}
	}
	// Ordered by pets owned, descending.
	for i := 1; i < len(overview.TopUsers); i++ {
		if overview.TopUsers[i].PetCount > overview.TopUsers[i-1].PetCount {
			t.Errorf("top users out of order at %d: %d > %d",
				i, overview.TopUsers[i].PetCount, overview.TopUsers[i-1].PetCount)
		}
	}
}
