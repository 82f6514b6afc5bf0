package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

var csvHeader = []string{
	"id", "location", "latitude", "longitude", "timestamp",
	"temperature", "feels_like", "humidity", "wind_speed",
	"condition", "description", "notes",
}

// File is a rendered export ready to be written to a response.
type File struct {
	Data        []byte
	ContentType string
	Filename    string
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Render serializes records in the requested format.
func (s *Service) Render(format string, records []models.WeatherRecord) (File, error) {
	stamp := time.Now().UTC().Format("20060102_150405")

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return File{}, fmt.Errorf("render json: %w", err)
		}
		return File{
			Data:        data,
			ContentType: "application/json",
			Filename:    "weather_records_" + stamp + ".json",
		}, nil
	case FormatCSV:
		data, err := renderCSV(records)
		if err != nil {
			return File{}, err
		}
		return File{
			Data:        data,
			ContentType: "text/csv",
			Filename:    "weather_records_" + stamp + ".csv",
		}, nil
	case FormatXLSX:
		data, err := renderXLSX(records)
		if err != nil {
			return File{}, err
		}
		return File{
			Data:        data,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    "weather_records_" + stamp + ".xlsx",
		}, nil
	case FormatPDF:
		data, err := renderPDF(records)
		if err != nil {
			return File{}, err
		}
		return File{
			Data:        data,
			ContentType: "application/pdf",
			Filename:    "weather_records_" + stamp + ".pdf",
		}, nil
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func recordRow(r models.WeatherRecord) []string {
	return []string{
		r.ID,
		r.LocationName,
		strconv.FormatFloat(r.Latitude, 'f', 4, 64),
		strconv.FormatFloat(r.Longitude, 'f', 4, 64),
		r.Timestamp.UTC().Format(time.RFC3339),
		strconv.FormatFloat(r.Current.Temperature, 'f', 1, 64),
		strconv.FormatFloat(r.Current.FeelsLike, 'f', 1, 64),
		strconv.Itoa(r.Current.Humidity),
		strconv.FormatFloat(r.Current.WindSpeed, 'f', 1, 64),
		r.Current.Condition,
		r.Current.Description,
		r.Notes,
	}
}

func renderCSV(records []models.WeatherRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	for _, r := range records {
		if err := w.Write(recordRow(r)); err != nil {
			return nil, fmt.Errorf("render csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderXLSX(records []models.WeatherRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Weather Records"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}

	for col, name := range csvHeader {
		cell, cellErr := excelize.CoordinatesToCellName(col+1, 1)
		if cellErr != nil {
			return nil, fmt.Errorf("render xlsx: %w", cellErr)
		}
		if err = f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
	}

	for i, r := range records {
		for col, value := range recordRow(r) {
			cell, cellErr := excelize.CoordinatesToCellName(col+1, i+2)
			if cellErr != nil {
				return nil, fmt.Errorf("render xlsx: %w", cellErr)
			}
			if err = f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("render xlsx: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPDF(records []models.WeatherRecord) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Weather Records", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Weather Records")
	pdf.Ln(12)

	cols := []struct {
		title string
		width float64
	}{
		{"Location", 55},
		{"Timestamp", 45},
		{"Temp", 20},
		{"Feels", 20},
		{"Humidity", 22},
		{"Wind", 20},
		{"Condition", 35},
		{"Notes", 60},
	}

	pdf.SetFont("Helvetica", "B", 9)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range records {
		values := []string{
			r.LocationName,
			r.Timestamp.UTC().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1fC", r.Current.Temperature),
			fmt.Sprintf("%.1fC", r.Current.FeelsLike),
			fmt.Sprintf("%d%%", r.Current.Humidity),
			fmt.Sprintf("%.1f", r.Current.WindSpeed),
			r.Current.Condition,
			r.Notes,
		}
		for i, v := range values {
			pdf.CellFormat(cols[i].width, 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
