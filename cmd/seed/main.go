// seed crea los datos mínimos para operar: la sucursal principal, el custodio
// por defecto y el usuario SUPER_ADMIN inicial. Es idempotente: si el email
// del admin ya existe, no escribe nada.
//
// Uso: go run ./cmd/seed
// Variables: SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD (obligatorias),
// SEED_BRANCH_NAME, SEED_BRANCH_LOCATION, SEED_CUSTODIAN_NAME,
// SEED_CUSTODIAN_IDENTIFICATION (opcionales con defaults).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/infrastructure/postgres"
	"github.com/davortega/bodega-equipos/pkg/config"
	"github.com/davortega/bodega-equipos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son obligatorios")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	custodianRepo := postgres.NewCustodianRepository(pool)

	existing, err := userRepo.FindByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("verificar admin existente")
	}
	if existing != nil {
		log.Info().Str("email", adminEmail).Msg("el admin ya existe, nada que sembrar")
		return
	}

	now := time.Now()

	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      envOr("SEED_BRANCH_NAME", "Bodega Principal"),
		Location:  envOr("SEED_BRANCH_LOCATION", "Matriz"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := branchRepo.Create(branch); err != nil {
		log.Fatal().Err(err).Msg("crear sucursal")
	}
	log.Info().Str("branch_id", branch.ID).Str("name", branch.Name).Msg("sucursal creada")

	custodian, err := custodianRepo.GetDefault()
	if err != nil {
		log.Fatal().Err(err).Msg("verificar custodio por defecto")
	}
	if custodian == nil {
		custodian = &entity.Custodian{
			ID:             uuid.New().String(),
			Name:           envOr("SEED_CUSTODIAN_NAME", "Custodio General"),
			Identification: envOr("SEED_CUSTODIAN_IDENTIFICATION", "0000000000"),
			IsActive:       true,
			IsDefault:      true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := custodianRepo.Create(custodian); err != nil {
			log.Fatal().Err(err).Msg("crear custodio por defecto")
		}
		log.Info().Str("custodian_id", custodian.ID).Msg("custodio por defecto creado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Administrador",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		BranchID:     branch.ID,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("admin creado, seed completado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
