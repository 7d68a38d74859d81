package report

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// writeParquet writes rows as a snappy-compressed Parquet file, the
// same codec the dataset's downstream consumers expect.
func writeParquet[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Snappy))
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer for %s: %w", path, err)
	}
	return f.Close()
}
