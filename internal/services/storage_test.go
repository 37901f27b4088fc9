package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, fieldName, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile(fieldName)
	require.NoError(t, err)
	return header
}

func TestStorageSaveAndDelete(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDirs())

	file := multipartFile(t, "resume", "cv.txt", "Go developer.")

	filename, path, err := storage.SaveFile(file, FileKindResume)
	require.NoError(t, err)

	assert.Equal(t, ".txt", filepath.Ext(filename))
	assert.Equal(t, storage.GetFilePath(FileKindResume, filename), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Go developer.", string(content))

	require.NoError(t, storage.DeleteFile(FileKindResume, filename))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStorageRejectsDisallowedExtensions(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDirs())

	_, _, err := storage.SaveFile(multipartFile(t, "resume", "payload.exe", "MZ"), FileKindResume)
	assert.Error(t, err)

	_, _, err = storage.SaveFile(multipartFile(t, "audio", "cv.pdf", "%PDF"), FileKindAudio)
	assert.Error(t, err)
}

func TestStorageAudioExtensionsAllowed(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDirs())

	for _, name := range []string{"a.wav", "a.mp3", "a.webm", "a.ogg"} {
		_, _, err := storage.SaveFile(multipartFile(t, "audio", name, "data"), FileKindAudio)
		assert.NoError(t, err, name)
	}
}
