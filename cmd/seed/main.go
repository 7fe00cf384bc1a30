// Command seed populates the database with demo users, recipes and
// relations for local development.
package main

import (
	"flag"
	"log"

	"ladle/internal/bootstrap"
	"ladle/internal/config"
	"ladle/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of demo users to create")
	flag.IntVar(&opts.RecipesPerMax, "recipes", opts.RecipesPerMax, "max recipes per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedCatalog: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seed data generated")
}
