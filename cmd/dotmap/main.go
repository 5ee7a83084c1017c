// cmd/dotmap/main.go
package main

import (
	"dotmap/internal/app"
	"dotmap/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
