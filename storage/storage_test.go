package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPath(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")

	t.Run("readable sharded key", func(t *testing.T) {
		got := documentPath(id, "Procuração Assinada.PDF")
		assert.Equal(t, "documentos/a1/"+id.String()+"_procura_o_assinada.pdf", got)
	})

	t.Run("nameless file falls back", func(t *testing.T) {
		got := documentPath(id, "...")
		assert.Contains(t, got, "_documento")
	})

	t.Run("slug is bounded", func(t *testing.T) {
		got := documentPath(id, strings.Repeat("a", 500)+".txt")
		assert.LessOrEqual(t, len(got), len("documentos/xx/")+len(id.String())+1+maxSlugLen+len(".txt"))
	})
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	id := uuid.New()
	path, err := s.Upload(ctx, id, "ctps.pdf", strings.NewReader("conteudo do documento"))
	require.NoError(t, err)
	assert.Contains(t, path, id.String())

	reader, err := s.Download(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "conteudo do documento", string(data))

	require.NoError(t, s.Delete(ctx, path))
	_, err = s.Download(ctx, path)
	assert.ErrorContains(t, err, "document not found")

	// rollback of a half-finished upload deletes an absent path
	assert.NoError(t, s.Delete(ctx, path))
}
