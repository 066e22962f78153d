package i18n

var turkish = Messages{
	KeyTitle:            "📊 {app_name}: Akıllı Veri Analizi",
	KeyDescription:      "Verilerinizi saniyeler içinde keşfetmek, temizlemek ve görselleştirmek için bir CSV veya Excel dosyası yükleyin.",
	KeyLanguageLabel:    "🌐 Language / Dil",
	KeySidebarHeader:    "📁 Veri Yükleme",
	KeyFileUploader:     "Bir CSV veya Excel dosyası seçin",
	KeyUploadButton:     "Yükle",
	KeyUploadSuccess:    "Dosya başarıyla yüklendi!",
	KeyUploadError:      "Dosya okunamadı: %s",
	KeyUploadInfo:       "Başlamak için lütfen bir dosya yükleyin.",
	KeyUploadKept:       "Dosya adı öncekiyle aynı, düzenlenmiş tablonuz korundu.",
	KeyWaitMsg:          "Veri dosyası bekleniyor... Yüklemek için kenar çubuğunu kullanın.",
	KeyTabPreview:       "🗂️ Önizleme",
	KeyTabEDA:           "🔍 Keşifsel Analiz",
	KeyTabClean:         "🧹 Temizleme",
	KeyTabChart:         "📈 Görselleştirme",
	KeyTabExport:        "💾 İndir",
	KeyPreviewHeader:    "Veri Önizleme",
	KeyRowCount:         "Satır Sayısı",
	KeyColCount:         "Sütun Sayısı",
	KeyNaNCount:         "Eksik Değerler",
	KeyColDetails:       "Sütun Detayları",
	KeyColName:          "Sütun",
	KeyDtype:            "Veri Tipi",
	KeyNaN:              "Eksik",
	KeyUnique:           "Benzersiz",
	KeyEDAHeader:        "Keşifsel Veri Analizi",
	KeyShowStats:        "İstatistiksel özeti göster",
	KeyHideStats:        "İstatistiksel özeti gizle",
	KeyStatsTextOnly:    "Sayısal sütun yok, bunun yerine metin özeti gösteriliyor.",
	KeyCleaningHeader:   "Veri Temizleme",
	KeyCleanNaNBtn:      "Eksik değerli satırları sil",
	KeyFillMeanBtn:      "Eksik değerleri ortalama ile doldur",
	KeyDropDupBtn:       "Tekrarlanan satırları kaldır",
	KeySuccessClean:     "Veri başarıyla temizlendi!",
	KeyRowsRemoved:      "%d satır silindi.",
	KeyCellsFilled:      "%d hücre dolduruldu.",
	KeyFillMeanSkipped:  "Ortalama alınacak değer yok: %s",
	KeyVisHeader:        "Veri Görselleştirme",
	KeySelectX:          "X eksenini seçin",
	KeySelectY:          "Y eksenini seçin",
	KeySelectType:       "Grafik türü",
	KeyPlotBtn:          "Grafiği çiz",
	KeyVisTooFewColumns: "Görselleştirme için en az 2 sütuna ihtiyaç var.",
	KeyVisNoNumeric:     "Y ekseni sayısal bir sütun gerektirir ve bu tabloda hiç yok.",
	KeyChartBar:         "Çubuk",
	KeyChartLine:        "Çizgi",
	KeyChartScatter:     "Dağılım",
	KeyDownloadHeader:   "Temizlenmiş Veriyi İndir",
	KeyDownloadBtn:      "CSV olarak indir",
	KeyDownloadXLSXBtn:  "Excel olarak indir",
	KeyResetBtn:         "Veriyi temizle",
	KeyResetDone:        "Veri kaldırıldı.",
	KeyErrorGeneric:     "Bir hata oluştu: %s",
}
