package sql

import (
	"embed"
)

//go:embed queries/get_application.sql
var GetApplication string

// Migrations holds the application-record schema used to provision local and
// test databases.
//
//go:embed migrations/*.sql
var Migrations embed.FS
