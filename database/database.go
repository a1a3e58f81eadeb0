package database

import (
	"fmt"
	"log"

	config "github.com/randexapp/randex/configs"
	"github.com/randexapp/randex/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() *gorm.DB {
	dsn := config.Config("DATABASE_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Service{},
		&models.Appointment{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// Two non-cancelled appointments may never share a slot. The booking
	// workflow checks first, this index settles any race the check misses.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
		ON appointments (business_id, appointment_date, appointment_time)
		WHERE status <> 'cancelled'`).Error
	if err != nil {
		log.Fatalf("🔥 Failed to create slot index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}
