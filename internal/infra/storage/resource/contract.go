package resource

import "github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
