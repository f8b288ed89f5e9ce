package mock

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetease/backend/internal/domain/entity"
	"github.com/budgetease/backend/internal/integration/persistence"
)

var once sync.Once
var db *Db

// Table pairs a table name used in feature files with its gorm model.
type Table struct {
	Name  string
	Model any
}

type Db struct {
	DbConn *gorm.DB
	tables []Table
}

// NewDb returns the shared in-memory database. Tables are listed parents first;
// they are emptied in reverse order.
func NewDb(tables []Table) *Db {
	once.Do(func() {
		db = open(tables)
	})
	return db
}

func open(tables []Table) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		tables: tables,
	}

	models := make([]any, len(tables))
	for i, table := range tables {
		models[i] = table.Model
	}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	if err := newDbMock.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB empties every table and restores the default global categories.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		table := d.tables[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table.Model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table.Name, err)
		}
	}

	return persistence.NewCategoryRepository(d.DbConn).SeedGlobals(context.Background(), entity.DefaultCategories())
}

func (d *Db) GetModel(table string) (any, bool) {
	for _, t := range d.tables {
		if t.Name == table {
			return t.Model, true
		}
	}
	return nil, false
}
