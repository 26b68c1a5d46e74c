package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/GNaves/Tasks-API/internal/config"
)

const defaultDSNParams = "parseTime=true&multiStatements=true"

// MysqlDSN builds a driver DSN. An empty database name targets the server
// itself, which administrative connections (create/drop database) need.
func MysqlDSN(user, password, host, port, database, params string) string {
	if params == "" {
		params = defaultDSNParams
	}
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn := MysqlDSN(conf.DbUser, conf.DbPassword, conf.DbHost, conf.DbPort, conf.DbName, conf.DbParams)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}
