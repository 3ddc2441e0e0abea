package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"github.com/wayfarerhq/wayfarer/internal/config"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/logging"
	"github.com/wayfarerhq/wayfarer/internal/storage"
)

// Development seeder: fills PostgreSQL and MongoDB with fake travelers
// and destinations so the API has something to serve out of the box.
func main() {
	var (
		seed     = flag.Int64("seed", 0, "faker seed (0 = random)")
		users    = flag.Int("users", 5, "number of users to create")
		dests    = flag.Int("destinations", 10, "number of destinations to create")
		password = flag.String("password", "wayfarer", "password assigned to every seeded user")
	)
	flag.Parse()

	faker := gofakeit.New(*seed)

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Invalid configuration", err, nil)
	}

	db, err := storage.OpenAndMigrate(cfg.PostgresDSN())
	if err != nil {
		logging.Fatal("Failed to initialize PostgreSQL", err, nil)
	}
	repo := storage.NewPostgresRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	docs, err := docstore.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logging.Fatal("Failed to connect to MongoDB", err, nil)
	}
	defer docs.Close(context.Background())

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logging.Fatal("Failed to hash seed password", err, nil)
	}

	created := 0
	for i := 0; i < *users; i++ {
		username := faker.Username()
		sub, err := repo.CreateUser(username, string(hash))
		if err != nil {
			if err == storage.ErrUsernameTaken {
				continue
			}
			logging.Fatal("Failed to create user", err, logging.Fields{"username": username})
		}
		created++
		logging.Info("Seeded user", logging.Fields{"username": username, "sub": sub})
	}

	for i := 0; i < *dests; i++ {
		id, err := docs.NextDestinationID(ctx)
		if err != nil {
			logging.Fatal("Failed to allocate destination id", err, nil)
		}
		city, country := faker.City(), faker.Country()
		d := &docstore.Destination{
			ID:          id,
			Name:        fmt.Sprintf("%s, %s", city, country),
			Description: faker.Sentence(12),
			City:        city,
			Country:     country,
			UserID:      1,
			UserName:    "seed",
		}
		if err := docs.InsertDestination(ctx, d); err != nil {
			logging.Fatal("Failed to insert destination", err, logging.Fields{"name": d.Name})
		}
	}

	logging.Info("Seed complete", logging.Fields{"users": created, "destinations": *dests, "password": *password})
}
