package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

// ExportDashboard renders the summary counters and the work
// distribution series as a downloadable Excel workbook or CSV,
// selected by ?format= (default xlsx).
func (h *Handler) ExportDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.summaryStats()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	distribution, err := h.workDistribution()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}

	stamp := time.Now().Format("20060102_150405")

	if r.URL.Query().Get("format") == "csv" {
		data, err := dashboardCSV(stats, distribution)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, "failed to generate CSV file")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=dashboard_%s.csv", stamp))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	f, err := dashboardWorkbook(stats, distribution)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, "failed to generate Excel file")
		return
	}
	buffer, err := f.WriteToBuffer()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, "failed to write Excel file")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=dashboard_%s.xlsx", stamp))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

var summaryLabels = []struct {
	label string
	value func(dashboardStats) interface{}
}{
	{"Total Projects", func(s dashboardStats) interface{} { return s.Total }},
	{"Completed Projects", func(s dashboardStats) interface{} { return s.Completed }},
	{"Ongoing Projects", func(s dashboardStats) interface{} { return s.Ongoing }},
	{"Companies", func(s dashboardStats) interface{} { return s.Companies }},
	{"Today's Labor", func(s dashboardStats) interface{} { return s.Labor }},
	{"Civil Work Completed", func(s dashboardStats) interface{} { return s.Civil }},
}

func dashboardWorkbook(stats dashboardStats, distribution []workDistributionOut) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Dashboard"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Project Dashboard")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	f.SetCellValue(sheetName, "A4", "Metric")
	f.SetCellValue(sheetName, "B4", "Value")
	f.SetCellStyle(sheetName, "A4", "B4", headerStyle)
	f.SetColWidth(sheetName, "A", "B", 24)

	row := 5
	for _, s := range summaryLabels {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), s.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), s.value(stats))
		row++
	}

	row += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Category")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Completed Quantity")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	row++
	for _, d := range distribution {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), d.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), d.Value)
		row++
	}

	return f, nil
}

func dashboardCSV(stats dashboardStats, distribution []workDistributionOut) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	cw.Write([]string{"Metric", "Value"})
	for _, s := range summaryLabels {
		cw.Write([]string{s.label, fmt.Sprintf("%v", s.value(stats))})
	}
	cw.Write([]string{})
	cw.Write([]string{"Category", "Completed Quantity"})
	for _, d := range distribution {
		cw.Write([]string{d.Category, strconv.FormatFloat(d.Value, 'f', -1, 64)})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
