package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/marco-hrlic/go-sir/track"
	"github.com/pkg/errors"
)

var header = []string{"step", "truth", "observation", "estimate", "spread"}

// exportCSV writes one CSV record per time step of res to w
func exportCSV(w io.Writer, res *track.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	format := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	for k := range res.Truth {
		rec := []string{
			strconv.Itoa(k),
			format(res.Truth[k]),
			format(res.Observations[k]),
			format(res.Estimates[k]),
			format(res.Spread[k]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeCSV(path string, res *track.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}

	if err := exportCSV(f, res); err != nil {
		f.Close()
		return errors.Wrap(err, "failed to export results")
	}

	return f.Close()
}
