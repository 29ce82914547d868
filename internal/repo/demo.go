package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type demoUser struct {
	User
	password string
}

var demoUsers = []demoUser{
	{
		User: User{
			Name:      "Raj Patel",
			Email:     "farmer@test.com",
			Phone:     "+91 9876543210",
			Location:  "Ahmedabad, Gujarat",
			FarmSize:  "medium",
			CropTypes: []string{"Rice", "Wheat", "Cotton"},
		},
		password: "password123",
	},
	{
		User: User{
			Name:      "Priya Sharma",
			Email:     "priya@test.com",
			Phone:     "+91 8765432109",
			Location:  "Jaipur, Rajasthan",
			FarmSize:  "small",
			CropTypes: []string{"Vegetables", "Spices"},
		},
		password: "demo123",
	},
	{
		User: User{
			Name:      "Arjun Singh",
			Email:     "arjun@test.com",
			Phone:     "+91 7654321098",
			Location:  "Ludhiana, Punjab",
			FarmSize:  "large",
			CropTypes: []string{"Wheat", "Rice", "Sugarcane"},
		},
		password: "test123",
	},
}

// demoID derives a stable id so demo sessions survive a restart.
func demoID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("bharatyield:demo:"+email)).String()
}

// SeedDemoUsers adds the demo farmers to store. Existing accounts are kept.
// Returns the number of users created.
func SeedDemoUsers(ctx context.Context, store UserStore, hash func(string) (string, error)) (int, error) {
	created := 0
	for _, d := range demoUsers {
		h, err := hash(d.password)
		if err != nil {
			return created, fmt.Errorf("hash demo password: %w", err)
		}
		u := d.User
		u.ID = demoID(u.Email)
		u.PasswordHash = h
		if _, err := store.Create(ctx, u); err != nil {
			if errors.Is(err, ErrUserExists) {
				continue
			}
			return created, fmt.Errorf("seed %s: %w", u.Email, err)
		}
		created++
	}
	return created, nil
}
