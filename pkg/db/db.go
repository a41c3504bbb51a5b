package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	constant "github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/common"
	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/models"
)

const DefaultDbPath = "vitals.db"

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance opens the database once per process and migrates the four
// tables. Later calls return the same instance whatever dialector they pass.
func GetInstance(dialector gorm.Dialector) *DB {
	var logger = constant.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		if err := instance.Conn.AutoMigrate(models.AllModels()...); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

// UseSqliteDialector opens a database file. An empty path falls back to
// VITALS_DB_PATH and then to vitals.db in the working directory.
func UseSqliteDialector(dbPath string) gorm.Dialector {
	if dbPath == "" {
		var found bool
		if dbPath, found = os.LookupEnv(constant.EnvKeyVitalsDbPath); !found {
			dbPath = DefaultDbPath
		}
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
