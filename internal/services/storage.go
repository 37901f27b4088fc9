package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileKind selects the upload subdirectory and the extension allow-list.
type FileKind string

const (
	FileKindResume FileKind = "resumes"
	FileKindAudio  FileKind = "audio"
)

var allowedExtensions = map[FileKind][]string{
	FileKindResume: {".pdf", ".docx", ".txt"},
	FileKindAudio:  {".wav", ".mp3", ".webm", ".ogg"},
}

type StorageService interface {
	SaveFile(file *multipart.FileHeader, kind FileKind) (string, string, error)
	GetFilePath(kind FileKind, filename string) string
	DeleteFile(kind FileKind, filename string) error
	EnsureUploadDirs() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDirs() error {
	for kind := range allowedExtensions {
		dir := filepath.Join(s.uploadPath, string(kind))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader, kind FileKind) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extensionAllowed(kind, ext) {
		return "", "", fmt.Errorf("invalid file extension: %s", ext)
	}

	uniqueFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, string(kind), uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(kind FileKind, filename string) string {
	return filepath.Join(s.uploadPath, string(kind), filename)
}

func (s *storageService) DeleteFile(kind FileKind, filename string) error {
	filePath := s.GetFilePath(kind, filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func extensionAllowed(kind FileKind, ext string) bool {
	for _, allowed := range allowedExtensions[kind] {
		if ext == allowed {
			return true
		}
	}
	return false
}
