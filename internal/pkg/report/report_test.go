package report

import (
	"bytes"
	"mime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return Document{
		Name:          "Asha",
		School:        "X",
		DominantTrait: "Realistic",
		Scores: []ScoreLine{
			{Label: "Realistic", Value: 60},
			{Label: "Investigative", Value: 60},
			{Label: "Artistic", Value: 60},
			{Label: "Social", Value: 64},
			{Label: "Enterprising", Value: 58.5},
			{Label: "Conventional", Value: 60},
		},
		GeneratedAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := NewRenderer().Render(sampleDocument())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(data), []byte("%%EOF")))
}

func TestRenderSinglePage(t *testing.T) {
	pdf := NewRenderer().build(sampleDocument())
	require.NoError(t, pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderContent(t *testing.T) {
	data, err := NewRenderer(WithCompression(false)).Render(sampleDocument())
	require.NoError(t, err)

	content := string(data)
	for _, want := range []string{
		"(SOPHIA ACADEMY) Tj",
		"(SSLC Career Guidance Report) Tj",
		"(Name: Asha) Tj",
		"(School: X) Tj",
		"(Dominant Trait: Realistic) Tj",
		"(Detailed Scores:) Tj",
		"(Realistic: 60.0%) Tj",
		"(Social: 64.0%) Tj",
		"(Enterprising: 58.5%) Tj",
	} {
		assert.Contains(t, content, want)
	}
}

func TestRenderEmptyScores(t *testing.T) {
	doc := sampleDocument()
	doc.Scores = nil

	data, err := NewRenderer().Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderFile(t *testing.T) {
	f, err := NewRenderer().RenderFile(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, "Sophia_Report_Asha.pdf", f.Filename)
	assert.Equal(t, ContentType, f.ContentType)
	assert.NotEmpty(t, f.Data)
}

func TestFormatScoreLine(t *testing.T) {
	tests := []struct {
		line ScoreLine
		want string
	}{
		{ScoreLine{"Realistic", 60}, "Realistic: 60.0%"},
		{ScoreLine{"Social", 64.04}, "Social: 64.0%"},
		{ScoreLine{"Artistic", 254}, "Artistic: 254.0%"},
		{ScoreLine{"Conventional", -12}, "Conventional: -12.0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScoreLine(tt.line))
	}
}

func TestContentDisposition(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		v := ContentDisposition(Filename("Asha"))
		disposition, params, err := mime.ParseMediaType(v)
		require.NoError(t, err)
		assert.Equal(t, "attachment", disposition)
		assert.Equal(t, "Sophia_Report_Asha.pdf", params["filename"])
	})

	t.Run("spaces and quotes", func(t *testing.T) {
		name := Filename(`Asha "A" Rao`)
		_, params, err := mime.ParseMediaType(ContentDisposition(name))
		require.NoError(t, err)
		assert.Equal(t, name, params["filename"])
	})

	t.Run("non-ascii", func(t *testing.T) {
		name := Filename("Aśha")
		_, params, err := mime.ParseMediaType(ContentDisposition(name))
		require.NoError(t, err)
		assert.Equal(t, name, params["filename"])
	})
}
