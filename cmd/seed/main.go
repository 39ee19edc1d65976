// Command seed populates the development database with demo users, posts,
// likes and comments.
package main

import (
	"flag"
	"log"

	"linkup/internal/config"
	"linkup/internal/database"
	"linkup/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.PostsPerUser, "posts", opts.PostsPerUser, "posts per user")
	flag.StringVar(&opts.Password, "password", opts.Password, "shared plaintext password for seeded accounts")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Network(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users with %d posts each (password %q)",
		opts.Users, opts.PostsPerUser, opts.Password)
}
