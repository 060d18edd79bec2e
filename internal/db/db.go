package db

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// MemoryURL selects the in-process store instead of postgres.
const MemoryURL = "memory://"

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Professional{},
		&models.ProfessionalService{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Backfill rows written without a status.
	db.Exec(`
        UPDATE appointments
        SET status = 'agendado'
        WHERE status IS NULL OR status = ''
    `)

	return db, nil
}

// Stores groups the persistence ports every command needs.
type Stores struct {
	Appointments domain.Repository
	Catalog      catalog.Repository
	Audit        audit.Store
}

// Open returns postgres-backed stores, or in-memory ones for memory://. The
// returned func releases the connection pool.
func Open(cfg *config.Config, logger *zap.Logger) (Stores, func(), error) {
	if strings.HasPrefix(cfg.DBUrl, MemoryURL) {
		logger.Warn("using in-memory storage, data is lost on exit")
		repo := memory.New()
		return Stores{Appointments: repo, Catalog: repo, Audit: repo}, func() {}, nil
	}

	gdb, err := NewDB(cfg)
	if err != nil {
		return Stores{}, nil, err
	}

	closeFn := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return Stores{
		Appointments: repository.NewAppointmentGormRepository(gdb),
		Catalog:      repository.NewCatalogGormRepository(gdb),
		Audit:        repository.NewAuditGormRepository(gdb),
	}, closeFn, nil
}
