package i18n

var chinese = Messages{
	KeyTitle:            "📊 {app_name}：智能数据分析",
	KeyDescription:      "上传 CSV 或 Excel 文件，几秒钟内即可探索、清洗和可视化您的数据。",
	KeyLanguageLabel:    "🌐 Language / Dil",
	KeySidebarHeader:    "📁 上传数据",
	KeyFileUploader:     "选择 CSV 或 Excel 文件",
	KeyUploadButton:     "上传",
	KeyUploadSuccess:    "文件上传成功！",
	KeyUploadError:      "无法读取文件：%s",
	KeyUploadInfo:       "请上传文件以开始。",
	KeyUploadKept:       "文件名与之前相同，已保留您编辑过的表格。",
	KeyWaitMsg:          "等待数据文件中……请使用侧边栏上传。",
	KeyTabPreview:       "🗂️ 预览",
	KeyTabEDA:           "🔍 探索性分析",
	KeyTabClean:         "🧹 清洗",
	KeyTabChart:         "📈 可视化",
	KeyTabExport:        "💾 下载",
	KeyPreviewHeader:    "数据预览",
	KeyRowCount:         "行数",
	KeyColCount:         "列数",
	KeyNaNCount:         "缺失值",
	KeyColDetails:       "列详情",
	KeyColName:          "列",
	KeyDtype:            "数据类型",
	KeyNaN:              "缺失",
	KeyUnique:           "唯一值",
	KeyEDAHeader:        "探索性数据分析",
	KeyShowStats:        "显示统计摘要",
	KeyHideStats:        "隐藏统计摘要",
	KeyStatsTextOnly:    "没有数值列，改为显示文本摘要。",
	KeyCleaningHeader:   "数据清洗",
	KeyCleanNaNBtn:      "删除含缺失值的行",
	KeyFillMeanBtn:      "用平均值填充缺失值",
	KeyDropDupBtn:       "删除重复行",
	KeySuccessClean:     "数据清洗成功！",
	KeyRowsRemoved:      "已删除 %d 行。",
	KeyCellsFilled:      "已填充 %d 个单元格。",
	KeyFillMeanSkipped:  "没有可计算平均值的数据：%s",
	KeyVisHeader:        "数据可视化",
	KeySelectX:          "选择 X 轴",
	KeySelectY:          "选择 Y 轴",
	KeySelectType:       "图表类型",
	KeyPlotBtn:          "绘制图表",
	KeyVisTooFewColumns: "可视化至少需要 2 列。",
	KeyVisNoNumeric:     "Y 轴需要数值列，但此表中没有。",
	KeyChartBar:         "柱状图",
	KeyChartLine:        "折线图",
	KeyChartScatter:     "散点图",
	KeyDownloadHeader:   "下载清洗后的数据",
	KeyDownloadBtn:      "下载为 CSV",
	KeyDownloadXLSXBtn:  "下载为 Excel",
	KeyResetBtn:         "清除数据",
	KeyResetDone:        "数据已清除。",
	KeyErrorGeneric:     "发生错误：%s",
}
