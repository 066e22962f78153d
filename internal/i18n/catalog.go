package i18n

import (
	"fmt"
	"strings"
)

// Key names one UI message.
type Key string

const (
	KeyTitle            Key = "title"
	KeyDescription      Key = "description"
	KeyLanguageLabel    Key = "language_label"
	KeySidebarHeader    Key = "sidebar_header"
	KeyFileUploader     Key = "file_uploader"
	KeyUploadButton     Key = "upload_button"
	KeyUploadSuccess    Key = "upload_success"
	KeyUploadError      Key = "upload_error"
	KeyUploadInfo       Key = "upload_info"
	KeyUploadKept       Key = "upload_kept"
	KeyWaitMsg          Key = "wait_msg"
	KeyTabPreview       Key = "tab_preview"
	KeyTabEDA           Key = "tab_eda"
	KeyTabClean         Key = "tab_clean"
	KeyTabChart         Key = "tab_chart"
	KeyTabExport        Key = "tab_export"
	KeyPreviewHeader    Key = "preview_header"
	KeyRowCount         Key = "row_count"
	KeyColCount         Key = "col_count"
	KeyNaNCount         Key = "nan_count"
	KeyColDetails       Key = "col_details"
	KeyColName          Key = "col_name"
	KeyDtype            Key = "dtype"
	KeyNaN              Key = "nan"
	KeyUnique           Key = "unique"
	KeyEDAHeader        Key = "eda_header"
	KeyShowStats        Key = "show_stats"
	KeyHideStats        Key = "hide_stats"
	KeyStatsTextOnly    Key = "stats_text_only"
	KeyCleaningHeader   Key = "cleaning_header"
	KeyCleanNaNBtn      Key = "clean_nan_btn"
	KeyFillMeanBtn      Key = "fill_mean_btn"
	KeyDropDupBtn       Key = "drop_dup_btn"
	KeySuccessClean     Key = "success_clean"
	KeyRowsRemoved      Key = "rows_removed"
	KeyCellsFilled      Key = "cells_filled"
	KeyFillMeanSkipped  Key = "fill_mean_skipped"
	KeyVisHeader        Key = "vis_header"
	KeySelectX          Key = "select_x"
	KeySelectY          Key = "select_y"
	KeySelectType       Key = "select_type"
	KeyPlotBtn          Key = "plot_btn"
	KeyVisTooFewColumns Key = "vis_too_few_columns"
	KeyVisNoNumeric     Key = "vis_no_numeric"
	KeyChartBar         Key = "chart_bar"
	KeyChartLine        Key = "chart_line"
	KeyChartScatter     Key = "chart_scatter"
	KeyDownloadHeader   Key = "download_header"
	KeyDownloadBtn      Key = "download_btn"
	KeyDownloadXLSXBtn  Key = "download_xlsx_btn"
	KeyResetBtn         Key = "reset_btn"
	KeyResetDone        Key = "reset_done"
	KeyErrorGeneric     Key = "error_generic"
)

// Keys lists every message key. Each language table must define all of them.
var Keys = []Key{
	KeyTitle, KeyDescription, KeyLanguageLabel, KeySidebarHeader, KeyFileUploader,
	KeyUploadButton, KeyUploadSuccess, KeyUploadError, KeyUploadInfo, KeyUploadKept,
	KeyWaitMsg, KeyTabPreview, KeyTabEDA, KeyTabClean, KeyTabChart, KeyTabExport,
	KeyPreviewHeader, KeyRowCount, KeyColCount, KeyNaNCount, KeyColDetails, KeyColName,
	KeyDtype, KeyNaN, KeyUnique, KeyEDAHeader, KeyShowStats, KeyHideStats,
	KeyStatsTextOnly, KeyCleaningHeader, KeyCleanNaNBtn, KeyFillMeanBtn, KeyDropDupBtn,
	KeySuccessClean, KeyRowsRemoved, KeyCellsFilled, KeyFillMeanSkipped, KeyVisHeader,
	KeySelectX, KeySelectY, KeySelectType, KeyPlotBtn, KeyVisTooFewColumns,
	KeyVisNoNumeric, KeyChartBar, KeyChartLine, KeyChartScatter, KeyDownloadHeader,
	KeyDownloadBtn, KeyDownloadXLSXBtn, KeyResetBtn, KeyResetDone, KeyErrorGeneric,
}

// Messages is one language's table.
type Messages map[Key]string

// Catalog maps each language to its messages. It is never modified after
// construction and is safe for concurrent use.
type Catalog struct {
	tables map[Code]Messages
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{tables: map[Code]Messages{
		EN: english,
		TR: turkish,
		JA: japanese,
		KO: korean,
		ZH: chinese,
	}}
}

// For returns the table for code, or the English one for unknown codes.
func (c *Catalog) For(code Code) Messages {
	if m, ok := c.tables[code]; ok {
		return m
	}
	return c.tables[DefaultCode]
}

// T looks up key in code's table, falling back to English and then to the
// key itself. When args are given the message is used as a format string.
func (c *Catalog) T(code Code, key Key, args ...any) string {
	msg, ok := c.For(code)[key]
	if !ok {
		msg, ok = c.tables[DefaultCode][key]
	}
	if !ok {
		msg = string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Title renders the page title with the application name filled in.
func (c *Catalog) Title(code Code, appName string) string {
	return strings.ReplaceAll(c.T(code, KeyTitle), "{app_name}", appName)
}

// Missing lists keys absent from code's own table.
func (c *Catalog) Missing(code Code) []Key {
	table := c.tables[code]
	var out []Key
	for _, k := range Keys {
		if _, ok := table[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
