package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"cabin-booking-backend/models"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := sqldriver.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = host + ":" + port
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	cfg := sqldriver.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	cfg.DBName = envOrDefault("DB_NAME", "cabins_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema and
// seeds reference data. It sets the package-level DB handle used by main
// to construct the repositories.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Guest{},
		&models.Cabin{},
		&models.Setting{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase fills in reference rows when the tables are empty: the
// settings singleton and a starter cabin list for local development.
func SeedDatabase() {
	var settingCount int64
	DB.Model(&models.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.Setting{
			MinBookingLength:    3,
			MaxBookingLength:    90,
			MaxGuestsPerBooking: 10,
			BreakfastPrice:      15,
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed settings: %v", err)
		} else {
			log.Println("Settings seeded")
		}
	}

	var cabinCount int64
	DB.Model(&models.Cabin{}).Count(&cabinCount)
	if cabinCount == 0 {
		cabins := []models.Cabin{
			{Name: "001", MaxCapacity: 2, RegularPrice: 250, Discount: 0, Description: "Cozy cabin for two"},
			{Name: "002", MaxCapacity: 4, RegularPrice: 350, Discount: 25, Description: "Family cabin with a view"},
			{Name: "003", MaxCapacity: 8, RegularPrice: 500, Discount: 50, Description: "Large group cabin by the lake"},
		}
		if err := DB.Create(&cabins).Error; err != nil {
			log.Printf("warning: failed to seed cabins: %v", err)
		} else {
			log.Println("Cabins seeded")
		}
	}
}
