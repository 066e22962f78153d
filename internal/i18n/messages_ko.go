package i18n

var korean = Messages{
	KeyTitle:            "📊 {app_name}: 스마트 데이터 분석",
	KeyDescription:      "CSV 또는 Excel 파일을 업로드하여 몇 초 만에 데이터를 탐색하고 정리하고 시각화하세요.",
	KeyLanguageLabel:    "🌐 Language / Dil",
	KeySidebarHeader:    "📁 데이터 업로드",
	KeyFileUploader:     "CSV 또는 Excel 파일을 선택하세요",
	KeyUploadButton:     "업로드",
	KeyUploadSuccess:    "파일이 성공적으로 업로드되었습니다!",
	KeyUploadError:      "파일을 읽을 수 없습니다: %s",
	KeyUploadInfo:       "시작하려면 파일을 업로드하세요.",
	KeyUploadKept:       "이전과 같은 파일 이름이므로 편집한 테이블을 유지했습니다.",
	KeyWaitMsg:          "데이터 파일을 기다리는 중... 사이드바에서 업로드하세요.",
	KeyTabPreview:       "🗂️ 미리보기",
	KeyTabEDA:           "🔍 탐색적 분석",
	KeyTabClean:         "🧹 정리",
	KeyTabChart:         "📈 시각화",
	KeyTabExport:        "💾 다운로드",
	KeyPreviewHeader:    "데이터 미리보기",
	KeyRowCount:         "행 수",
	KeyColCount:         "열 수",
	KeyNaNCount:         "결측값",
	KeyColDetails:       "열 세부 정보",
	KeyColName:          "열",
	KeyDtype:            "데이터 유형",
	KeyNaN:              "결측",
	KeyUnique:           "고유값",
	KeyEDAHeader:        "탐색적 데이터 분석",
	KeyShowStats:        "통계 요약 보기",
	KeyHideStats:        "통계 요약 숨기기",
	KeyStatsTextOnly:    "숫자 열이 없어 텍스트 요약을 대신 표시합니다.",
	KeyCleaningHeader:   "데이터 정리",
	KeyCleanNaNBtn:      "결측값이 있는 행 삭제",
	KeyFillMeanBtn:      "결측값을 평균으로 채우기",
	KeyDropDupBtn:       "중복 행 제거",
	KeySuccessClean:     "데이터가 성공적으로 정리되었습니다!",
	KeyRowsRemoved:      "%d개 행을 삭제했습니다.",
	KeyCellsFilled:      "%d개 셀을 채웠습니다.",
	KeyFillMeanSkipped:  "평균을 낼 값이 없습니다: %s",
	KeyVisHeader:        "데이터 시각화",
	KeySelectX:          "X축 선택",
	KeySelectY:          "Y축 선택",
	KeySelectType:       "차트 유형",
	KeyPlotBtn:          "차트 그리기",
	KeyVisTooFewColumns: "시각화하려면 최소 2개의 열이 필요합니다.",
	KeyVisNoNumeric:     "Y축에는 숫자 열이 필요하지만 이 테이블에는 없습니다.",
	KeyChartBar:         "막대",
	KeyChartLine:        "선",
	KeyChartScatter:     "산점도",
	KeyDownloadHeader:   "정리된 데이터 다운로드",
	KeyDownloadBtn:      "CSV로 다운로드",
	KeyDownloadXLSXBtn:  "Excel로 다운로드",
	KeyResetBtn:         "데이터 지우기",
	KeyResetDone:        "데이터를 지웠습니다.",
	KeyErrorGeneric:     "오류가 발생했습니다: %s",
}
