// Package tabular reads author id tables and writes lookup results.
//
// Input may be CSV (UTF-8, with or without a byte order mark) or an Excel
// workbook. Results are written as CSV, XLSX, or JSON with the columns
// author_id, name, orcid, affiliated.
package tabular
