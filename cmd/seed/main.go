package main

import (
	"context"
	"log"
	"time"

	"github.com/alecthomas/kong"
	"github.com/brianvoe/gofakeit/v7"

	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-scheduler/internal/db"
	"github.com/BruksfildServices01/agenda-scheduler/internal/logger"
	ucCatalog "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/catalog"
)

var serviceMenu = []struct {
	name     string
	duration int
}{
	{"Corte feminino", 60},
	{"Corte masculino", 30},
	{"Escova", 45},
	{"Coloração", 90},
	{"Manicure", 30},
	{"Pedicure", 45},
	{"Barba", 30},
	{"Hidratação", 60},
}

var shifts = [][2]string{
	{"08:00", "17:00"},
	{"09:00", "18:00"},
	{"10:00", "19:00"},
	{"08:00", "12:00"},
	{"13:00", "18:30"},
}

var CLI struct {
	Professionals int `default:"5" help:"Number of professionals to create."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("seed"),
		kong.Description("Fill the agenda database with fake services and professionals"),
		kong.UsageOnError(),
	)

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}

	stores, closeDB, err := dbpkg.Open(cfg, zl)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	defer closeDB()

	gofakeit.Seed(time.Now().UnixNano())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	serviceIDs, err := seedServices(ctx, ucCatalog.NewCreateService(stores.Catalog, nil))
	if err != nil {
		log.Fatalf("seed services: %v", err)
	}
	save := ucCatalog.NewSaveProfessional(stores.Catalog, nil)
	if err := seedProfessionals(ctx, save, serviceIDs, CLI.Professionals); err != nil {
		log.Fatalf("seed professionals: %v", err)
	}

	log.Println("seed complete")
}

func seedServices(ctx context.Context, create *ucCatalog.CreateService) ([]uint, error) {
	log.Printf("seeding %d services", len(serviceMenu))

	ids := make([]uint, 0, len(serviceMenu))
	for _, s := range serviceMenu {
		svc, err := create.Execute(ctx, s.name, s.duration)
		if err != nil {
			return nil, err
		}
		ids = append(ids, svc.ID)
	}
	return ids, nil
}

func seedProfessionals(ctx context.Context, save *ucCatalog.SaveProfessional, serviceIDs []uint, count int) error {
	log.Printf("seeding %d professionals", count)

	for i := 0; i < count; i++ {
		shift := shifts[gofakeit.Number(0, len(shifts)-1)]

		linked := make([]uint, 0, 3)
		for _, id := range serviceIDs {
			if gofakeit.Bool() {
				linked = append(linked, id)
			}
		}
		if len(linked) == 0 {
			linked = append(linked, serviceIDs[gofakeit.Number(0, len(serviceIDs)-1)])
		}

		p, err := save.Execute(ctx, ucCatalog.SaveProfessionalInput{
			Name:       gofakeit.FirstName() + " " + gofakeit.LastName(),
			ShiftStart: shift[0],
			ShiftEnd:   shift[1],
			ServiceIDs: linked,
		})
		if err != nil {
			return err
		}
		log.Printf("professional %d: %s (%s-%s, %d services)", p.ID, p.Name, p.ShiftStart, p.ShiftEnd, len(p.Services))
	}
	return nil
}
