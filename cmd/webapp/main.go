// filepath: cmd/webapp/main.go
package main

import (
	"embed"

	"devops-webapp/internal/cli"
)

//go:embed public
var publicFS embed.FS

// @title DevOps Starter Pack Web App API
// @version 1.0.0
// @description Minimal Working Example (MWE) web application.
// @contact.name mhamdi
// @BasePath /api
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute(publicFS)
}
