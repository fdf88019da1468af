package utils

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"cinema_console/model"

	"github.com/xuri/excelize/v2"
)

// Sheet is a table ready for export.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// WriteXLSX renders the sheet as an xlsx workbook.
func WriteXLSX(s Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	name := s.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, h := range s.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(name, cell, cell, header)
	}
	for r, row := range s.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", r+2, err)
		}
	}
	if len(s.Headers) > 0 {
		last, _ := excelize.ColumnNumberToName(len(s.Headers))
		_ = f.SetColWidth(name, "A", last, 18)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func FilmSheet(films []model.Film) Sheet {
	s := Sheet{Name: "Films", Headers: []string{"ID", "Name", "Category", "Director", "Actor", "Producer", "Country", "Year", "Duration", "Limit age", "Start date", "End date", "Enabled"}}
	for _, f := range films {
		s.Rows = append(s.Rows, []any{f.ID, f.Name, f.Category, f.Director, f.Actor, f.Producer, f.Country, f.Year, f.Duration, f.LimitAge, f.StartDate.String(), f.EndDate.String(), f.Enable})
	}
	return s
}

func CinemaSheet(cinemas []model.Cinema) Sheet {
	s := Sheet{Name: "Cinemas", Headers: []string{"ID", "Name", "City", "Address", "Hotline", "Latitude", "Longitude"}}
	for _, c := range cinemas {
		s.Rows = append(s.Rows, []any{c.ID, c.Name, c.City, c.Address, c.Hotline, c.Latitude, c.Longitude})
	}
	return s
}

func RoomSheet(rooms []model.Room, cinemaNames map[int]string) Sheet {
	s := Sheet{Name: "Rooms", Headers: []string{"ID", "Name", "Cinema", "Rows", "Columns", "Seats", "Status"}}
	for _, r := range rooms {
		cinema := cinemaNames[r.CinemaId]
		if cinema == "" {
			cinema = strconv.Itoa(r.CinemaId)
		}
		s.Rows = append(s.Rows, []any{r.ID, r.Name, cinema, r.NumberRow, r.NumberColumn, r.NumberSeat, r.Status.String()})
	}
	return s
}

func EmployeeSheet(employees []model.Employee) Sheet {
	s := Sheet{Name: "Employees", Headers: []string{"ID", "Name", "Username", "Email", "Phone", "Address", "Birthday", "Gender", "Admin"}}
	for _, e := range employees {
		gender := "Female"
		if e.Gender {
			gender = "Male"
		}
		s.Rows = append(s.Rows, []any{e.ID, e.Name, e.Username, e.Email, e.PhoneNumber, e.Address, e.Birthday.String(), gender, e.IsAdmin})
	}
	return s
}

func CustomerSheet(customers []model.Customer) Sheet {
	s := Sheet{Name: "Customers", Headers: []string{"ID", "Name", "Email", "Phone", "Address", "Date of birth"}}
	for _, c := range customers {
		s.Rows = append(s.Rows, []any{c.ID, c.CustomerName, c.Email, c.PhoneNumber, c.Address, c.DateOfBirth.String()})
	}
	return s
}

// ExportFilename builds "<resource>-<yyyymmdd>.xlsx".
func ExportFilename(resource, day string) string {
	return strings.ToLower(resource) + "-" + day + ".xlsx"
}
