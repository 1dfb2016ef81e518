package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// WriteCSV dumps the current sample window as CSV with a header row.
func (c *Collector) WriteCSV(w io.Writer) error {
	samples := c.Samples()
	if err := gocsv.Marshal(&samples, w); err != nil {
		return fmt.Errorf("write frame samples: %w", err)
	}
	return nil
}

// WriteCSVFile writes the current sample window to a file, creating or
// truncating it.
func (c *Collector) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return c.WriteCSV(f)
}
