package i18n

var english = Messages{
	KeyTitle:            "📊 {app_name}: Smart Data Analysis",
	KeyDescription:      "Upload a CSV or Excel file to explore, clean and visualize your data in seconds.",
	KeyLanguageLabel:    "🌐 Language / Dil",
	KeySidebarHeader:    "📁 Upload Data",
	KeyFileUploader:     "Choose a CSV or Excel file",
	KeyUploadButton:     "Upload",
	KeyUploadSuccess:    "File uploaded successfully!",
	KeyUploadError:      "The file could not be read: %s",
	KeyUploadInfo:       "Please upload a file to get started.",
	KeyUploadKept:       "Same file name as before, so your edited table was kept.",
	KeyWaitMsg:          "Waiting for a data file... Use the sidebar to upload one.",
	KeyTabPreview:       "🗂️ Preview",
	KeyTabEDA:           "🔍 EDA",
	KeyTabClean:         "🧹 Cleaning",
	KeyTabChart:         "📈 Visualization",
	KeyTabExport:        "💾 Download",
	KeyPreviewHeader:    "Data Preview",
	KeyRowCount:         "Rows",
	KeyColCount:         "Columns",
	KeyNaNCount:         "Missing Values",
	KeyColDetails:       "Column Details",
	KeyColName:          "Column",
	KeyDtype:            "Data Type",
	KeyNaN:              "Missing",
	KeyUnique:           "Unique",
	KeyEDAHeader:        "Exploratory Data Analysis",
	KeyShowStats:        "Show statistical summary",
	KeyHideStats:        "Hide statistical summary",
	KeyStatsTextOnly:    "No numeric columns, showing a text summary instead.",
	KeyCleaningHeader:   "Data Cleaning",
	KeyCleanNaNBtn:      "Drop rows with missing values",
	KeyFillMeanBtn:      "Fill missing values with the mean",
	KeyDropDupBtn:       "Remove duplicate rows",
	KeySuccessClean:     "Data cleaned successfully!",
	KeyRowsRemoved:      "%d rows removed.",
	KeyCellsFilled:      "%d cells filled.",
	KeyFillMeanSkipped:  "No values to average in: %s",
	KeyVisHeader:        "Data Visualization",
	KeySelectX:          "Select X axis",
	KeySelectY:          "Select Y axis",
	KeySelectType:       "Chart type",
	KeyPlotBtn:          "Draw chart",
	KeyVisTooFewColumns: "At least 2 columns are needed for visualization.",
	KeyVisNoNumeric:     "The Y axis needs a numeric column, and this table has none.",
	KeyChartBar:         "Bar",
	KeyChartLine:        "Line",
	KeyChartScatter:     "Scatter",
	KeyDownloadHeader:   "Download Cleaned Data",
	KeyDownloadBtn:      "Download as CSV",
	KeyDownloadXLSXBtn:  "Download as Excel",
	KeyResetBtn:         "Clear data",
	KeyResetDone:        "The data was cleared.",
	KeyErrorGeneric:     "Something went wrong: %s",
}
