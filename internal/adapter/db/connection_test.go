package db_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GNaves/Tasks-API/internal/adapter/db"
)

func TestMysqlDSN(t *testing.T) {
	dsn := db.MysqlDSN("tasks", "secret", "db", "3306", "tasks", "parseTime=true")
	require.Equal(t, "tasks:secret@tcp(db:3306)/tasks?parseTime=true", dsn)

	// empty params fall back to the defaults the repositories rely on
	dsn = db.MysqlDSN("tasks", "secret", "db", "3306", "tasks", "")
	require.Equal(t, "tasks:secret@tcp(db:3306)/tasks?parseTime=true&multiStatements=true", dsn)

	// no database targets the server, for administrative connections
	dsn = db.MysqlDSN("root", "root", "127.0.0.1", "3306", "", "parseTime=true")
	require.Equal(t, "root:root@tcp(127.0.0.1:3306)/?parseTime=true", dsn)
}
