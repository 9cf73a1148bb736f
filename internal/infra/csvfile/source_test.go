package csvfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sourceFrom(t *testing.T, data string) *Source {
	t.Helper()
	source, err := New(io.NopCloser(strings.NewReader(data)))
	assert.NoError(t, err)
	return source
}

func TestSourceReadsHeaderAndRows(t *testing.T) {
	source := sourceFrom(t, "name,email,plan\na,a@x.com,pro\nb,b@x.com,\n")
	defer source.Close()

	assert.Equal(t, []string{"name", "email", "plan"}, source.Columns())

	row, err := source.Next()
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "a", "email": "a@x.com", "plan": "pro"}, row)

	row, err = source.Next()
	assert.NoError(t, err)
	assert.Equal(t, "", row["plan"])

	_, err = source.Next()
	assert.Equal(t, io.EOF, err)
}

func TestSourceTrimsHeaderCells(t *testing.T) {
	source := sourceFrom(t, " name , email \na,a@x.com\n")
	defer source.Close()

	assert.Equal(t, []string{"name", "email"}, source.Columns())
}

func TestSourceShortRowLeavesColumnsOut(t *testing.T) {
	source := sourceFrom(t, "name,email,plan\na,a@x.com\n")
	defer source.Close()

	row, err := source.Next()
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", row["email"])
	_, ok := row["plan"]
	assert.False(t, ok)
}

func TestSourceEmptyFile(t *testing.T) {
	_, err := New(io.NopCloser(strings.NewReader("")))
	assert.Equal(t, ErrEmptyFile, err)
}

func TestOpenRemovesStagedFileOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.csv")
	assert.NoError(t, os.WriteFile(path, []byte("email\na@x.com\n"), 0o644))

	source, err := Open(path)
	assert.NoError(t, err)

	row, err := source.Next()
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", row["email"])

	assert.NoError(t, source.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenRemovesStagedFileWhenHeaderIsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	assert.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Open(path)
	assert.Equal(t, ErrEmptyFile, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
