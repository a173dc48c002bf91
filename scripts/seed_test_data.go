package main

import (
	"fmt"
	"log"
	"os"

	"github.com/suwubh/saas-notes-app/internal/config"
	"github.com/suwubh/saas-notes-app/internal/database"
	"github.com/suwubh/saas-notes-app/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// TenantData matches the seed file schema for tenants
type TenantData struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
	Plan string `yaml:"plan"`
}

// UserData matches the seed file schema for users
type UserData struct {
	Email      string `yaml:"email"`
	TenantSlug string `yaml:"tenant_slug"`
	Role       string `yaml:"role"`
	Password   string `yaml:"password"`
}

// SeedFile is the top-level seed document
type SeedFile struct {
	Tenants []TenantData `yaml:"tenants"`
	Users   []UserData   `yaml:"users"`
}

func main() {
	path := "scripts/data/test_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if err := loadSeed(db, &seed); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Test data seeded successfully")
}

func loadSeed(db *gorm.DB, seed *SeedFile) error {
	tenantsBySlug := make(map[string]*models.Tenant, len(seed.Tenants))

	for _, td := range seed.Tenants {
		plan := models.SubscriptionPlan(td.Plan)
		if plan == "" {
			plan = models.PlanFree
		}
		if !plan.IsValid() {
			return fmt.Errorf("tenant %s: invalid plan %q", td.Slug, td.Plan)
		}

		var tenant models.Tenant
		err := db.Where("slug = ?", td.Slug).First(&tenant).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			tenant = models.Tenant{Name: td.Name, Slug: td.Slug, SubscriptionPlan: plan}
			if err := db.Create(&tenant).Error; err != nil {
				return fmt.Errorf("create tenant %s: %w", td.Slug, err)
			}
			log.Printf("Created tenant %s (%s)", td.Name, td.Slug)
		case err != nil:
			return fmt.Errorf("lookup tenant %s: %w", td.Slug, err)
		default:
			log.Printf("Tenant %s already present, skipping", td.Slug)
		}
		tenantsBySlug[td.Slug] = &tenant
	}

	for _, ud := range seed.Users {
		tenant, ok := tenantsBySlug[ud.TenantSlug]
		if !ok {
			return fmt.Errorf("user %s: unknown tenant slug %q", ud.Email, ud.TenantSlug)
		}

		role := models.Role(ud.Role)
		if role == "" {
			role = models.RoleMember
		}
		if !role.IsValid() {
			return fmt.Errorf("user %s: invalid role %q", ud.Email, ud.Role)
		}

		var existing models.User
		err := db.Where("email = ?", ud.Email).First(&existing).Error
		if err == nil {
			log.Printf("User %s already present, skipping", ud.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("lookup user %s: %w", ud.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(ud.Password), 12)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", ud.Email, err)
		}

		user := models.User{
			TenantID:     tenant.ID,
			Email:        ud.Email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", ud.Email, err)
		}
		log.Printf("Created user %s (%s, %s)", ud.Email, role, ud.TenantSlug)
	}

	return nil
}
