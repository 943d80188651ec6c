package cli

import (
	"fmt"
	"io"

	"devops-webapp/internal/config"

	"github.com/fatih/color"
)

// printBanner prints the startup lines with the URLs of the API endpoints.
func printBanner(w io.Writer, c *config.Config) {
	base := "http://" + c.Address()

	color.New(color.FgGreen, color.Bold).Fprintf(w, "🚀 Server running on %s\n", base)
	fmt.Fprintf(w, "Health check: %s/api/health\n", base)
	fmt.Fprintf(w, "Time API: %s/api/time\n", base)
	fmt.Fprintf(w, "App Info: %s/api/info\n", base)
	if c.Metrics.Enabled {
		fmt.Fprintf(w, "Metrics: http://%s/metrics\n", c.MetricsAddress())
	}
}
