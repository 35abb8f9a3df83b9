package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
)

// csvTimeFormat is the timestamp layout used in CSV exports.
const csvTimeFormat = "2006-01-02 15:04:05"

var csvHeader = []string{"x", "y", "rssi", "quality", "timestamp"}

// RenderCSV serializes points to CSV in insertion order. Values are
// numeric, enum or timestamp and never contain commas, so no quoting is
// ever produced.
func RenderCSV(points []models.MeasurementPoint) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	w.Write(csvHeader)
	for _, p := range points {
		w.Write([]string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.Itoa(p.RSSI),
			string(p.Quality),
			p.Timestamp.Format(csvTimeFormat),
		})
	}
	w.Flush()

	return sb.String()
}

// ParseCSVImport reads a CSV document and returns its (x, y, rssi)
// tuples in row order. The header must name the x, y and rssi columns;
// column order is free and extra columns are ignored. Range validation
// of rssi happens later, in Store.Replace.
func ParseCSVImport(r io.Reader) ([]RawPoint, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ImportError{Msg: "empty file, expected a header with columns x, y, rssi"}
	}
	if err != nil {
		return nil, &ImportError{Msg: fmt.Sprintf("unreadable header: %v", err)}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"x", "y", "rssi"} {
		if _, ok := cols[required]; !ok {
			return nil, &ImportError{Msg: fmt.Sprintf("missing required column %q", required)}
		}
	}

	var rows []RawPoint
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ImportError{Line: line, Msg: fmt.Sprintf("unreadable row: %v", err)}
		}

		x, err := parseCSVFloat(record, cols["x"], "x")
		if err != nil {
			return nil, &ImportError{Line: line, Msg: err.Error()}
		}
		y, err := parseCSVFloat(record, cols["y"], "y")
		if err != nil {
			return nil, &ImportError{Line: line, Msg: err.Error()}
		}
		rssi, err := parseCSVRSSI(record, cols["rssi"])
		if err != nil {
			return nil, &ImportError{Line: line, Msg: err.Error()}
		}

		rows = append(rows, RawPoint{X: x, Y: y, RSSI: rssi})
	}

	return rows, nil
}

func parseCSVFloat(record []string, idx int, name string) (float64, error) {
	if idx >= len(record) {
		return 0, fmt.Errorf("missing %s value", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, record[idx])
	}
	return v, nil
}

// parseCSVRSSI accepts whole numbers in either integer or float form.
// Pandas-exported files render integer columns as "-55.0".
func parseCSVRSSI(record []string, idx int) (int, error) {
	if idx >= len(record) {
		return 0, fmt.Errorf("missing rssi value")
	}
	raw := strings.TrimSpace(record[idx])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != math.Trunc(v) {
		return 0, fmt.Errorf("invalid rssi value %q, expected a whole dBm number", record[idx])
	}
	return int(v), nil
}
