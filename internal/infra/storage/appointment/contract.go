package appointment

import "github.com/RRibeiro-047/carlach-detailing/pkg/dbmetrics"

// DBExecutor is satisfied by *sql.DB and *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
