package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"maintdesk/internal/database"
	"maintdesk/internal/domain"
	"maintdesk/internal/repository"

	"github.com/google/uuid"
)

// Seeds a local database with one user per role and a couple of work
// orders so the API is usable right after startup.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "maintdesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM cost_entries")
	db.Exec("DELETE FROM work_orders")
	db.Exec("DELETE FROM preventive_maintenance")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM counters")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	log.Println("Creating users...")
	seedUsers := []struct {
		email string
		name  string
		role  domain.Role
	}{
		{"admin@maintdesk.io", "Admin", domain.RoleAdmin},
		{"supervisor@maintdesk.io", "Sam Supervisor", domain.RoleSupervisor},
		{"tech@maintdesk.io", "Terry Technician", domain.RoleTechnician},
		{"client@maintdesk.io", "Casey Client", domain.RoleClient},
	}

	byRole := map[domain.Role]*domain.User{}
	for _, su := range seedUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		u := &domain.User{
			ID:           uuid.NewString(),
			Email:        su.email,
			Name:         su.name,
			Role:         su.role,
			PasswordHash: string(hash),
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed user failed:", err)
		}
		byRole[su.role] = u
		log.Printf("User created: %s / password123 (%s)", su.email, su.role)
	}

	log.Println("Creating work orders...")
	workOrders := repository.NewWorkOrderRepository(db)
	supervisor := byRole[domain.RoleSupervisor]
	client := byRole[domain.RoleClient]
	tech := byRole[domain.RoleTechnician]

	orders := []*domain.WorkOrder{
		{
			Title:       "AC not cooling in server room",
			Description: "Temperature alarm triggered twice this week",
			RequestType: domain.RequestHVAC,
			SLAType:     domain.SLACritical,
			Location:    "Building A / Floor 2",
		},
		{
			Title:       "Leaking faucet in kitchen",
			Description: "Constant drip, water pooling under the sink",
			RequestType: domain.RequestPlumbing,
			SLAType:     domain.SLANormal,
		},
	}
	for i, wo := range orders {
		now := time.Now().UTC()
		wo.ID = uuid.NewString()
		wo.Status = domain.StatusPending
		wo.ClientID = client.ID
		wo.ClientName = client.Name
		wo.CreatedByID = supervisor.ID
		wo.CreatedByName = supervisor.Name
		wo.CreatedAt = now
		wo.UpdatedAt = now
		if i == 0 {
			wo.AssignedToID = tech.ID
			wo.AssignedToName = tech.Name
		}
		if err := workOrders.Create(ctx, wo); err != nil {
			log.Fatal("seed work order failed:", err)
		}
		fmt.Printf("Work order %s: %s\n", wo.RequestID, wo.Title)
	}

	log.Println("Done.")
}
