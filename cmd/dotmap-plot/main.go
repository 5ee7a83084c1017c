// cmd/dotmap-plot/main.go
package main

import (
	"dotmap/internal/appshell"
	"dotmap/internal/plotapp"
)

func main() { appshell.Main(plotapp.RunContext) }
