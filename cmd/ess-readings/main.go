// Command ess-readings asks the ESS central for its latest readings over the
// serial console and prints one line per sensor.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/ess-reader/internal/config"
	"github.com/banshee-data/ess-reader/internal/essframe"
	"github.com/banshee-data/ess-reader/internal/monitoring"
	"github.com/banshee-data/ess-reader/internal/serialport"
	"github.com/banshee-data/ess-reader/internal/version"
)

func main() {
	monitoring.Logger.Debug("starting", "version", version.String(), "built", version.BuildTime)

	if err := run(os.Stdout, serialport.RealFactory{}); err != nil {
		monitoring.Logger.Error("ess readings failed", "err", err)
		os.Exit(1)
	}
}

// run performs one request/response with the central and writes the records.
func run(w io.Writer, f serialport.Factory) error {
	cfg := config.Device()

	port, err := serialport.Open(f, cfg.Path, cfg.PortOptions(), cfg.ReadTimeout)
	if err != nil {
		return err
	}

	reply, err := serialport.Exchange(port, cfg.Command, cfg.MaxResponseBytes)
	if cerr := port.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close %s: %w", cfg.Path, cerr)
	}
	if err != nil {
		return err
	}
	monitoring.Logf("read %d bytes from %s", len(reply), cfg.Path)

	n, err := essframe.Write(w, essframe.Parse(reply))
	if err != nil {
		return fmt.Errorf("after %d records: %w", n, err)
	}
	return nil
}
