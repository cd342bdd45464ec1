// Command sandbox runs a local property service that accepts listing
// submissions the same way the production backend does.
package main

import (
	"homevest-listings/pkg/metrics"
)

func main() {
	cfg := LoadConfiguration()
	metrics.Init(nil)

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
