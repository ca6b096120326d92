package database

import (
	"context"
	"fmt"

	"casabot/config"

	"google.golang.org/api/sheets/v4"
)

// ReadRows fetches a whole worksheet and splits the header row from the data
// rows. Cell values come back as display strings.
func ReadRows(ctx context.Context, tab string) (headers []string, rows [][]string, err error) {
	resp, err := SheetsService.Spreadsheets.Values.
		Get(config.AppConfig.SheetsDocumentID, tab).
		Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", tab, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil, nil
	}
	headers = cellsToStrings(resp.Values[0])
	for _, raw := range resp.Values[1:] {
		rows = append(rows, cellsToStrings(raw))
	}
	return headers, rows, nil
}

// ReadRecords fetches a worksheet as header-keyed records, mirroring the
// shape the rest of the code filters over.
func ReadRecords(ctx context.Context, tab string) ([]map[string]string, error) {
	headers, rows, err := ReadRows(ctx, tab)
	if err != nil {
		return nil, err
	}
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// AppendRecord appends one record to a worksheet, ordering values by the
// sheet's existing header row so column order stays authoritative.
func AppendRecord(ctx context.Context, tab string, rec map[string]string) error {
	headers, _, err := ReadRows(ctx, tab)
	if err != nil {
		return err
	}
	if len(headers) == 0 {
		return fmt.Errorf("append to sheet %q: missing header row", tab)
	}
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = rec[h]
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err = SheetsService.Spreadsheets.Values.
		Append(config.AppConfig.SheetsDocumentID, tab+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to sheet %q: %w", tab, err)
	}
	return nil
}

// UpdateCell writes a single cell. Row and column are 1-based sheet
// coordinates (row 1 is the header row).
func UpdateCell(ctx context.Context, tab string, row, col int, value string) error {
	a1 := fmt.Sprintf("%s!%s%d", tab, columnLetter(col), row)
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := SheetsService.Spreadsheets.Values.
		Update(config.AppConfig.SheetsDocumentID, a1, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", a1, err)
	}
	return nil
}

func cellsToStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprint(c)
	}
	return out
}

// columnLetter converts a 1-based column index to A1 notation.
func columnLetter(col int) string {
	s := ""
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}
