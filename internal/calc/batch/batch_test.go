package batch

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"BharatYield/internal/calc/profit"
)

func workbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, addr, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadItemsAndCalculate(t *testing.T) {
	data := workbook(t, [][]any{
		{"crop", "landSize", "expectedYield", "marketPrice", "seedCost", "fertilizerCost", "laborCost", "irrigationCost", "otherCosts"},
		{"rice", "2", "40", "2100", "5000", "8000", "12000", "3000", "5000"},
		{"wheat", "1", "20"},
		{"bad", "abc", "20", "100"},
	})

	items, err := ReadItems(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "rice", items[0].Crop)
	assert.Equal(t, "2100", items[0].Fields["marketPrice"])

	res := Calculate(items, 1)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 168000.0, res.Results[0].TotalRevenue)
	assert.Equal(t, 41000.0, res.Results[1].TotalRevenue)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 4, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Fields, "landSize")
}

func TestReadItemsEmpty(t *testing.T) {
	data := workbook(t, [][]any{{"crop"}})
	_, err := ReadItems(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrEmptySheet)

	_, err = ReadItems(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestWriteWorkbook(t *testing.T) {
	in := []profit.FarmInputs{{Crop: "rice", LandSizeAcres: 1, ExpectedYieldPerAcre: 10, MarketPricePerQuintal: 100}}
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, in))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Crop", rows[0][0])
	assert.Equal(t, "rice", rows[1][0])
	assert.Equal(t, "1000", rows[1][4])
	assert.Equal(t, "Infinity", rows[1][9])
}

func TestImportHandler(t *testing.T) {
	data := workbook(t, [][]any{
		{"crop", "landSize", "expectedYield", "marketPrice"},
		{"maize", "1", "10", ""},
	})
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "plans.xlsx")
	require.NoError(t, err)
	_, _ = fw.Write(data)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 18500.0, res.Results[0].TotalRevenue)
}

func TestExportHandler(t *testing.T) {
	h := &Handler{}
	body, _ := json.Marshal(ExportRequest{Items: []Item{{Crop: "rice", Fields: map[string]string{"landSize": "1", "expectedYield": "5"}}}})
	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "profit-plans.xlsx")

	body, _ = json.Marshal(ExportRequest{Items: []Item{{Fields: map[string]string{"landSize": "0"}}}})
	rec = httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"items":[]}`))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
