package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Complete(t *testing.T) {
	c := NewCatalog()
	for _, code := range Codes() {
		assert.Empty(t, c.Missing(code), "language %s", code)
		assert.Len(t, c.For(code), len(Keys), "language %s has keys outside Keys", code)
	}
}

func TestCatalog_FormatVerbsMatchEnglish(t *testing.T) {
	c := NewCatalog()
	en := c.For(EN)
	for _, code := range Codes() {
		for _, k := range Keys {
			assert.Equal(t, strings.Count(en[k], "%"), strings.Count(c.For(code)[k], "%"),
				"%s/%s", code, k)
		}
	}
}

func TestParseCode(t *testing.T) {
	for _, in := range []string{"tr", "TR", " Tr "} {
		code, err := ParseCode(in)
		require.NoError(t, err)
		assert.Equal(t, TR, code)
	}

	_, err := ParseCode("de")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestTitle(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, "📊 DataZen: Smart Data Analysis", c.Title(EN, "DataZen"))
	assert.Contains(t, c.Title(JA, "DataZen"), "DataZen")
	assert.NotContains(t, c.Title(TR, "DataZen"), "{app_name}")
}

func TestT_FormatAndFallback(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, "Dosya okunamadı: boom", c.T(TR, KeyUploadError, "boom"))
	assert.Equal(t, "Rows", c.T(Code("XX"), KeyRowCount))
	assert.Equal(t, "no_such_key", c.T(EN, Key("no_such_key")))
}

func TestLanguageSwitchChangesLabels(t *testing.T) {
	c := NewCatalog()
	assert.NotEqual(t, c.T(EN, KeyVisTooFewColumns), c.T(TR, KeyVisTooFewColumns))
	assert.Equal(t, "Görselleştirme için en az 2 sütuna ihtiyaç var.", c.T(TR, KeyVisTooFewColumns))
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Code
	}{
		{"", EN},
		{"tr-TR,tr;q=0.9,en;q=0.8", TR},
		{"ja", JA},
		{"ko-KR", KO},
		{"zh-CN,zh;q=0.9", ZH},
		{"de-DE", EN},
		{"not a header;;;", EN},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header))
		})
	}
}

func TestDisplayNames(t *testing.T) {
	for _, code := range Codes() {
		assert.NotEmpty(t, code.DisplayName())
	}
	assert.Equal(t, "Türkçe", TR.DisplayName())
}
