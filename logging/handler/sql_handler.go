package handler

import (
	"fmt"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/s4mli/farola/cleaner"
)

type sqlHandler struct {
	db     *sqlx.DB
	insert string
	logger logrus.FieldLogger
}

func (h *sqlHandler) Emit(line string) {
	if _, err := h.db.Exec(h.insert, line); err != nil {
		h.logger.WithField("&", "Emit").Error("=> Exec: ", err)
	}
}

func (h *sqlHandler) Name() string { return "sql(" + h.db.DriverName() + ")" }
func (h *sqlHandler) Stop()        { h.db.Close() }

func newSqlHandler(driver, dsn, insert string, logger logrus.FieldLogger) (*sqlHandler, error) {
	if db, err := sqlx.Connect(driver, dsn); err != nil {
		return nil, err
	} else {
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(50)
		h := &sqlHandler{db, insert, logger}
		cleaner.Register(h)
		return h, nil
	}
}

func NewMySQLHandler(host, port, user, password, dbName, table string,
	logger logrus.FieldLogger) (*sqlHandler, error) {
	return newSqlHandler("mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8", user, password, host, port, dbName),
		fmt.Sprintf("INSERT INTO %s (line) VALUES (?)", table), logger)
}

func NewPostgresHandler(host, port, user, password, dbName, table string,
	logger logrus.FieldLogger) (*sqlHandler, error) {
	return newSqlHandler("postgres",
		fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbName),
		fmt.Sprintf("INSERT INTO %s (line) VALUES ($1)", table), logger)
}

func NewMsSQLHandler(host, port, user, password, dbName, table string,
	logger logrus.FieldLogger) (*sqlHandler, error) {
	return newSqlHandler("mssql",
		fmt.Sprintf("server=%s;user id=%s;password=%s;port=%s;database=%s",
			host, user, password, port, dbName),
		fmt.Sprintf("INSERT INTO %s (line) VALUES (?)", table), logger)
}
