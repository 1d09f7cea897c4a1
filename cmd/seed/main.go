package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"courseapi/internal/auth"
	"courseapi/internal/config"
	"courseapi/internal/db"
	"courseapi/internal/logging"
	"courseapi/internal/model"
	"courseapi/internal/repository"
)

//go:embed seed.json
var defaultSeed []byte

// SeedData is the structure of the seed file.
type SeedData struct {
	Users []struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		EmailAddress string `json:"emailAddress"`
		Password     string `json:"password"`
	} `json:"users"`
	Courses []struct {
		Owner           string  `json:"owner"`
		Title           string  `json:"title"`
		Description     string  `json:"description"`
		EstimatedTime   *string `json:"estimatedTime"`
		MaterialsNeeded *string `json:"materialsNeeded"`
	} `json:"courses"`
}

func main() {
	file := flag.String("file", "", "path to a seed JSON file (defaults to the bundled data)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg)
	logger.Info("Starting seed script...")

	raw := defaultSeed
	if *file != "" {
		if raw, err = os.ReadFile(*file); err != nil {
			logger.Fatalf("read seed file: %v", err)
		}
	}
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Fatalf("parse seed file: %v", err)
	}

	gormDB, err := db.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	courses := repository.NewCourseRepository(gormDB)

	created, err := seed(context.Background(), logger, users, courses, auth.NewBcryptHasher(0), data)
	if err != nil {
		logger.Fatalf("Failed to seed: %v", err)
	}
	logger.Infof("Seed completed: %d users, %d courses created", created.users, created.courses)
}

type seedCounts struct {
	users   int
	courses int
}

// seed inserts users that do not exist yet, then courses for known owners.
func seed(
	ctx context.Context,
	logger logrus.FieldLogger,
	users repository.UserRepository,
	courses repository.CourseRepository,
	hasher auth.PasswordHasher,
	data SeedData,
) (seedCounts, error) {
	var counts seedCounts
	for _, u := range data.Users {
		if _, err := users.FindUserByEmail(ctx, u.EmailAddress); err == nil {
			logger.Infof("user %s already exists, skipping", u.EmailAddress)
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return counts, fmt.Errorf("find user %s: %w", u.EmailAddress, err)
		}

		hashed, err := hasher.Hash(u.Password)
		if err != nil {
			return counts, err
		}
		user := &model.User{
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			EmailAddress: u.EmailAddress,
			Password:     hashed,
		}
		if err := users.CreateUser(ctx, user); err != nil {
			return counts, fmt.Errorf("create user %s: %w", u.EmailAddress, err)
		}
		counts.users++
	}

	for _, c := range data.Courses {
		owner, err := users.FindUserByEmail(ctx, c.Owner)
		if err != nil {
			logger.Warnf("skipping course %q: owner %s: %v", c.Title, c.Owner, err)
			continue
		}
		course := &model.Course{
			Title:           c.Title,
			Description:     c.Description,
			EstimatedTime:   c.EstimatedTime,
			MaterialsNeeded: c.MaterialsNeeded,
			UserID:          owner.ID,
		}
		if err := courses.CreateCourse(ctx, course); err != nil {
			return counts, fmt.Errorf("create course %q: %w", c.Title, err)
		}
		counts.courses++
	}
	return counts, nil
}
