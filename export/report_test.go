package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexflow-backend/analysis"
)

func sampleRun(t *testing.T) (analysis.CaseSnapshot, *analysis.CaseAnalysis) {
	t.Helper()
	snap := analysis.Normalize(analysis.CaseSnapshot{
		Title:     "Reclamação trabalhista",
		Area:      "Trabalhista",
		Narrative: "Demissão sem pagamento de verbas rescisórias.",
		Attachments: []analysis.Attachment{
			{Name: "ctps.pdf", URL: "https://files/ctps.pdf"},
		},
	})
	return snap, analysis.NewPipeline(analysis.DefaultTables()).Run(snap)
}

func TestReportSectionsOrder(t *testing.T) {
	snap, result := sampleRun(t)

	sections := ReportSections(snap, result)

	require.Len(t, sections, 7)
	assert.Equal(t, "Dados do Processo", sections[0].Heading)
	for i := 1; i < 7; i++ {
		assert.True(t, strings.HasPrefix(sections[i].Heading, "Etapa "), sections[i].Heading)
	}
	assert.Contains(t, sections[0].Body, "Reclamação trabalhista")
	assert.Contains(t, sections[4].Body, "DOS FATOS")
	assert.Contains(t, sections[6].Body, "Status:")
}

func TestExportPDF(t *testing.T) {
	snap, result := sampleRun(t)
	e := NewExporter(NewFPDFRenderer(), NewZipBuilder())

	got, err := e.ExportPDF(snap, result)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")), "output must be a PDF document")
}

func TestExportBundle(t *testing.T) {
	snap, result := sampleRun(t)
	e := NewExporter(NewFPDFRenderer(), NewZipBuilder())

	got, err := e.ExportBundle(snap, result)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(got), int64(len(got)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"relatorio_ia_processo.pdf",
		"anexos.txt",
		"checklist.txt",
		"dados.json",
	}, names)

	readEntry := func(name string) []byte {
		t.Helper()
		for _, f := range zr.File {
			if f.Name != name {
				continue
			}
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			var buf bytes.Buffer
			_, err = buf.ReadFrom(rc)
			require.NoError(t, err)
			return buf.Bytes()
		}
		t.Fatalf("entry %s not found", name)
		return nil
	}

	assert.Contains(t, string(readEntry("anexos.txt")), "ctps.pdf | https://files/ctps.pdf")
	assert.Contains(t, string(readEntry("checklist.txt")), "Status geral:")

	var dump struct {
		Case     analysis.CaseSnapshot  `json:"processo"`
		Analysis *analysis.CaseAnalysis `json:"analise"`
	}
	require.NoError(t, json.Unmarshal(readEntry("dados.json"), &dump))
	assert.Equal(t, snap.Title, dump.Case.Title)
	require.NotNil(t, dump.Analysis)
	assert.Equal(t, result.Etapa6.Status, dump.Analysis.Etapa6.Status)
}

func TestZipBuilderPreservesOrder(t *testing.T) {
	b := NewZipBuilder()

	got, err := b.Build([]ArchiveEntry{
		{Name: "b.txt", Data: []byte("b")},
		{Name: "a.txt", Data: []byte("a")},
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(got), int64(len(got)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "b.txt", zr.File[0].Name)
	assert.Equal(t, "a.txt", zr.File[1].Name)
}

func TestExportArtifact(t *testing.T) {
	e := NewExporter(NewFPDFRenderer(), NewZipBuilder())

	got, err := e.ExportArtifact(analysis.Artifact{
		Title:   "Relatório Final Completo (PDF)",
		Content: "RELATÓRIO FINAL — PRESTAÇÃO DE CONTAS",
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")))
}
