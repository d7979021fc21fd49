package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"hotelier/internal/database"
	"hotelier/internal/domain"
)

// Seeds a local database with staff accounts, a demo customer and a
// small room inventory.
func main() {
	db, err := database.Connect("hotelier.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	users := []struct {
		email    string
		password string
		name     string
		role     domain.UserRole
	}{
		{"manager@hotelier.test", "manager123", "Margaret Boss", domain.RoleManager},
		{"desk@hotelier.test", "frontdesk1", "Dana Desk", domain.RoleReceptionist},
		{"alice@example.com", "alice12345", "Alice Customer", domain.RoleCustomer},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		user := domain.User{
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{RoomNo: 101, Name: "Standard Single", Price: 80},
		{RoomNo: 102, Name: "Standard Double", Price: 100},
		{RoomNo: 201, Name: "Deluxe Double", Description: "Sea view", Price: 150},
		{RoomNo: 301, Name: "Suite", Description: "Top floor corner suite", Price: 250},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatal("seed room failed:", err)
		}
	}

	log.Println("Seed complete.")
}
