package i18n

var japanese = Messages{
	KeyTitle:            "📊 {app_name}: スマートデータ分析",
	KeyDescription:      "CSV または Excel ファイルをアップロードして、データを数秒で探索・クリーニング・可視化しましょう。",
	KeyLanguageLabel:    "🌐 Language / Dil",
	KeySidebarHeader:    "📁 データのアップロード",
	KeyFileUploader:     "CSV または Excel ファイルを選択してください",
	KeyUploadButton:     "アップロード",
	KeyUploadSuccess:    "ファイルのアップロードに成功しました！",
	KeyUploadError:      "ファイルを読み込めませんでした: %s",
	KeyUploadInfo:       "開始するにはファイルをアップロードしてください。",
	KeyUploadKept:       "前回と同じファイル名のため、編集済みのテーブルを保持しました。",
	KeyWaitMsg:          "データファイルを待っています... サイドバーからアップロードしてください。",
	KeyTabPreview:       "🗂️ プレビュー",
	KeyTabEDA:           "🔍 探索的分析",
	KeyTabClean:         "🧹 クリーニング",
	KeyTabChart:         "📈 可視化",
	KeyTabExport:        "💾 ダウンロード",
	KeyPreviewHeader:    "データプレビュー",
	KeyRowCount:         "行数",
	KeyColCount:         "列数",
	KeyNaNCount:         "欠損値",
	KeyColDetails:       "列の詳細",
	KeyColName:          "列",
	KeyDtype:            "データ型",
	KeyNaN:              "欠損",
	KeyUnique:           "ユニーク",
	KeyEDAHeader:        "探索的データ分析",
	KeyShowStats:        "統計サマリーを表示",
	KeyHideStats:        "統計サマリーを非表示",
	KeyStatsTextOnly:    "数値列がないため、テキストのサマリーを表示しています。",
	KeyCleaningHeader:   "データクリーニング",
	KeyCleanNaNBtn:      "欠損値を含む行を削除",
	KeyFillMeanBtn:      "欠損値を平均値で補完",
	KeyDropDupBtn:       "重複行を削除",
	KeySuccessClean:     "データのクリーニングに成功しました！",
	KeyRowsRemoved:      "%d 行を削除しました。",
	KeyCellsFilled:      "%d 個のセルを補完しました。",
	KeyFillMeanSkipped:  "平均を計算できる値がありません: %s",
	KeyVisHeader:        "データ可視化",
	KeySelectX:          "X 軸を選択",
	KeySelectY:          "Y 軸を選択",
	KeySelectType:       "グラフの種類",
	KeyPlotBtn:          "グラフを描画",
	KeyVisTooFewColumns: "可視化には少なくとも 2 つの列が必要です。",
	KeyVisNoNumeric:     "Y 軸には数値列が必要ですが、このテーブルにはありません。",
	KeyChartBar:         "棒グラフ",
	KeyChartLine:        "折れ線グラフ",
	KeyChartScatter:     "散布図",
	KeyDownloadHeader:   "クリーニング済みデータのダウンロード",
	KeyDownloadBtn:      "CSV としてダウンロード",
	KeyDownloadXLSXBtn:  "Excel としてダウンロード",
	KeyResetBtn:         "データをクリア",
	KeyResetDone:        "データをクリアしました。",
	KeyErrorGeneric:     "エラーが発生しました: %s",
}
