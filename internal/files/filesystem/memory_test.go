package filesystem

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ FileSystemProvider = (*MemoryFileSystem)(nil)
	_ FileSystemProvider = (*OSFileSystem)(nil)
)

func TestMemoryFileSystem_Basic(t *testing.T) {
	mfs := NewMemoryFileSystem("/sip/CASE-1")

	mfs.AddFile("metadata.xml", "<m/>")
	mfs.AddFile("representation/rep1/data/a.pdf", "%PDF-1.4")

	dir, err := mfs.Open("/sip/CASE-1")
	require.NoError(t, err, "Failed to open root directory")
	require.NotNil(t, dir)

	var files []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() {
			files = append(files, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"metadata.xml", "representation/rep1/data/a.pdf"}, files)
}

func TestMemoryFileSystem_OpenFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/sip")
	mfs.AddFile("a.pdf", "hello world!")

	rc, err := mfs.OpenFile("/sip/a.pdf")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello world!", string(content))

	_, err = mfs.OpenFile("missing.pdf")
	assert.Error(t, err)

	mfs.AddFile("dir/x.txt", "x")
	_, err = mfs.OpenFile("dir")
	assert.Error(t, err, "directories cannot be opened as files")
}

func TestMemoryFileSystem_FileOpenStreamsIndependently(t *testing.T) {
	mfs := NewMemoryFileSystem("/sip")
	mfs.AddFile("a.txt", "abc")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	err = dir.Walk(func(file File, _ error) error {
		if file.Info().IsDir() {
			return nil
		}
		for i := 0; i < 2; i++ {
			rc, err := file.Open()
			require.NoError(t, err)
			data, _ := io.ReadAll(rc)
			rc.Close()
			assert.Equal(t, "abc", string(data))
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/sip")
	mfs.AddFile("schema.xsd", "<xs:schema/>")

	info, err := mfs.Stat("/sip/schema.xsd")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "schema.xsd", info.Name())
	require.Equal(t, int64(12), info.Size())

	info, err = mfs.Stat("/sip")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = mfs.Stat("nope")
	require.Error(t, err)
}

func TestMemoryFileSystem_OpenErrors(t *testing.T) {
	mfs := NewMemoryFileSystem("/sip")
	mfs.AddFile("a.txt", "x")

	_, err := mfs.Open("a.txt")
	assert.Error(t, err, "file is not a directory")

	_, err = mfs.Open("missing")
	assert.Error(t, err)
}
