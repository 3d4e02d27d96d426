package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/jewelflow/workshop-service/internal/auth"
	"github.com/jewelflow/workshop-service/internal/config"
	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/observability"
	"github.com/jewelflow/workshop-service/internal/persistence"
	"github.com/jewelflow/workshop-service/internal/repository"
)

type seedUser struct {
	id       string
	name     string
	username string
	password string
	role     domain.Role
	stage    string
}

// The workshop roster used on first boot. Passwords are hashed at insert
// time; the seed is skipped entirely once any users exist.
var seedUsers = []seedUser{
	{"admin_rajesh", "Rajesh Kumar Soni", "rajesh", "tanisha", domain.RoleAdmin, ""},
	{"admin_prem", "Prem Ratan Soni", "prem", "tanisha", domain.RoleAdmin, ""},
	{"admin_sid", "Siddharth Soni", "sid", "tanisha", domain.RoleAdmin, ""},

	{"hd1", "Sameer Hand Designing", "sameer", "password", domain.RoleWorker, "Hand Designing"},
	{"hd2", "Sujay Hand Designing", "sujay", "password", domain.RoleWorker, "Hand Designing"},
	{"hd3", "Roshan Hand Designing", "roshan", "password", domain.RoleWorker, "Hand Designing"},
	{"hd4", "Sagar Hand Designing", "sagar", "password", domain.RoleWorker, "Hand Designing"},

	{"cad1", "Atanu CAD", "atanu", "password", domain.RoleWorker, "CAD"},
	{"cad2", "Aravind CAD", "aravind", "password", domain.RoleWorker, "CAD"},
	{"cad3", "Aftab CAD", "aftab", "password", domain.RoleWorker, "CAD"},
	{"cad4", "Sarfaraz CAD", "sarfaraz", "password", domain.RoleWorker, "CAD"},
	{"cad5", "Subhir CAD", "subhir", "password", domain.RoleWorker, "CAD"},
	{"cad6", "Preetam CAD", "preetam", "password", domain.RoleWorker, "CAD"},
	{"cad7", "Surjeet CAD", "surjeet", "password", domain.RoleWorker, "CAD"},
	{"cad8", "Kushal CAD", "kushal", "password", domain.RoleWorker, "CAD"},
	{"cad9", "Subha CAD", "subha", "password", domain.RoleWorker, "CAD"},
	{"cad10", "Pushpender CAD", "pushpender", "password", domain.RoleWorker, "CAD"},
	{"cad11", "Bapi CAD", "bapi", "password", domain.RoleWorker, "CAD"},

	{"gh1", "Sukumar Ghat", "sukumar", "password", domain.RoleWorker, "Ghat (Filing)"},
	{"gh2", "Vishwajith Ghat", "vishwajith", "password", domain.RoleWorker, "Ghat (Filing)"},
	{"gh3", "Rajesh Ghat", "rajesh_ghat", "password", domain.RoleWorker, "Ghat (Filing)"},
	{"gh4", "Amar Ghat", "amar", "password", domain.RoleWorker, "Ghat (Filing)"},
	{"gh5", "Nirmal Ghat", "nirmal", "password", domain.RoleWorker, "Ghat (Filing)"},
	{"gh6", "Manas Ghat", "manas", "password", domain.RoleWorker, "Ghat (Filing)"},
	{"gh7", "Jayanth Ghat", "jayanth", "password", domain.RoleWorker, "Ghat (Filing)"},

	{"p1_1", "Alttap Polish 1", "alttap", "password", domain.RoleWorker, "Polish 1"},
	{"p1_2", "Tanmay Polish 1", "tanmay", "password", domain.RoleWorker, "Polish 1"},

	{"p2_1", "Laltoo Polish 2", "laltoo", "password", domain.RoleWorker, "Polish 2"},
	{"p2_2", "Somen Polish 2", "somen", "password", domain.RoleWorker, "Polish 2"},

	{"set1", "Abhijit Setting", "abhijit", "password", domain.RoleWorker, "Diamond Setting"},
	{"set2", "Amresh Setting", "amresh", "password", domain.RoleWorker, "Diamond Setting"},
	{"set3", "Assu Setting", "assu", "password", domain.RoleWorker, "Diamond Setting"},
	{"set4", "Avikdas Setting", "avikdas", "password", domain.RoleWorker, "Diamond Setting"},
	{"set5", "Biwas Setting", "biwas", "password", domain.RoleWorker, "Diamond Setting"},
	{"set6", "Shariful Setting", "shariful", "password", domain.RoleWorker, "Diamond Setting"},
	{"set7", "Orajith Setting", "orajith", "password", domain.RoleWorker, "Diamond Setting"},
	{"set8", "Shibu Setting", "shibu", "password", domain.RoleWorker, "Diamond Setting"},
	{"set9", "Somnath Setting", "somnath", "password", domain.RoleWorker, "Diamond Setting"},
	{"set10", "Subrata Setting", "subrata", "password", domain.RoleWorker, "Diamond Setting"},
	{"set11", "Vijay Setting", "vijay", "password", domain.RoleWorker, "Diamond Setting"},
	{"set12", "Suman Setting", "suman", "password", domain.RoleWorker, "Diamond Setting"},
	{"set13", "Ramu Setting", "ramu", "password", domain.RoleWorker, "Diamond Setting"},

	{"str1", "Ambhu Stringing", "ambhu", "password", domain.RoleWorker, "Stringing"},
	{"str2", "Jaipal Stringing", "jaipal", "password", domain.RoleWorker, "Stringing"},
	{"str3", "Chandher Stringing", "chandher", "password", domain.RoleWorker, "Stringing"},
	{"str4", "Dinesh Stringing", "dinesh", "password", domain.RoleWorker, "Stringing"},
	{"str5", "Vishnu Stringing", "vishnu", "password", domain.RoleWorker, "Stringing"},

	{"kg1", "Sujith Kundan", "sujith", "password", domain.RoleWorker, "Kundan Ghat"},
	{"kg2", "Jagnath Kundan", "jagnath", "password", domain.RoleWorker, "Kundan Ghat"},
	{"kg3", "Srikanth Kundan", "srikanth", "password", domain.RoleWorker, "Kundan Ghat"},
	{"kg4", "Harshawardhan Kundan", "harshawardhan", "password", domain.RoleWorker, "Kundan Ghat"},
	{"kg5", "Krishna Kundan", "krishna", "password", domain.RoleWorker, "Kundan Ghat"},
	{"kg6", "Somnath Kundan", "somnath_kg", "password", domain.RoleWorker, "Kundan Ghat"},
	{"kg7", "Jagdish Kundan", "jagdish", "password", domain.RoleWorker, "Kundan Ghat"},
	{"kg8", "Yadgiree Kundan", "yadgiree", "password", domain.RoleWorker, "Kundan Ghat"},
}

func main() {
	log.Println("Starting seed...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pg.PoolHandle())

	existing, err := userRepo.List(ctx)
	if err != nil {
		logger.Fatal("failed to list users", zap.Error(err))
	}
	if len(existing) > 0 {
		logger.Info("users already present; skipping seed", zap.Int("count", len(existing)))
		return
	}

	inserted := 0
	for _, su := range seedUsers {
		hash, err := auth.HashPassword(su.password, cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to hash password", zap.String("username", su.username), zap.Error(err))
		}
		user := &domain.User{
			ID:           su.id,
			Username:     su.username,
			PasswordHash: hash,
			Name:         su.name,
			Role:         su.role,
		}
		if su.stage != "" {
			stage := su.stage
			user.AssignedStage = &stage
		}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Fatal("failed to insert user", zap.String("username", su.username), zap.Error(err))
		}
		inserted++
	}

	logger.Info("seed complete", zap.Int("users", inserted))
}
