package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"bookgram/backend/common"
	"bookgram/backend/model"

	"gorm.io/gorm"
)

// AllowedFormats are the file extensions accepted by the save workflow.
var AllowedFormats = []string{"txt", "md", "log", "pdf", "epub"}

// Unicode classes: letters and digits in any script survive normalization,
// so a non-Latin title keeps a usable topic.
var (
	nonTopicChars   = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Zs}-]`)
	topicSeparators = regexp.MustCompile(`[-\s\p{Zs}]+`)
)

// NormalizeTopic turns a human title into a filesystem- and topic-safe slug:
// lowercase, special characters stripped, runs of hyphens/whitespace
// collapsed into a single underscore. Idempotent.
func NormalizeTopic(title string) string {
	normalized := nonTopicChars.ReplaceAllString(strings.ToLower(title), "")
	normalized = topicSeparators.ReplaceAllString(normalized, "_")
	return strings.Trim(normalized, "_")
}

// GetFileExtension returns the lowercased extension without the dot, or ""
// when the filename has none.
func GetFileExtension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// SaveFileToDisk writes the content under the upload dir as {topic}.{ext},
// overwriting any existing file at that path, and returns the location.
func SaveFileToDisk(content []byte, topic string, extension string) (string, error) {
	if err := os.MkdirAll(common.UploadPath, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}
	location := filepath.Join(common.UploadPath, topic+"."+extension)
	if err := os.WriteFile(location, content, 0o644); err != nil {
		return "", fmt.Errorf("write file %s: %w", location, err)
	}
	return location, nil
}

// CreateFileRecord inserts the metadata row for a stored file.
func CreateFileRecord(db *gorm.DB, location string, topic string, size int64, format string) (*model.File, error) {
	record := model.File{
		LocationURL: location,
		Topic:       topic,
		Size:        size,
		Format:      format,
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create file record: %w", err)
	}
	return &record, nil
}

func GetFileByTopic(topic string) (*model.File, error) {
	var record model.File
	if err := model.DB.Where("topic = ?", topic).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("get file by topic %s: %w", topic, err)
	}
	return &record, nil
}

// SaveUpload runs the whole file-ingestion workflow: validate the request,
// write the content store, then record the file and subscribe the user in a
// single transaction. Returns the derived topic.
//
// The disk write is not covered by the transaction: a rollback (for example
// when the user does not exist) leaves the written file behind with no
// matching metadata row. Callers must tolerate such orphaned files.
func SaveUpload(title string, filename string, content []byte, userID int64) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrEmptyTitle
	}
	if filename == "" {
		return "", ErrEmptyFilename
	}
	format := GetFileExtension(filename)
	if format == "" {
		return "", ErrNoExtension
	}
	if len(content) == 0 {
		return "", ErrEmptyFile
	}
	if !slices.Contains(AllowedFormats, format) {
		return "", fmt.Errorf("%w %q, allowed formats: %s",
			ErrUnsupportedFormat, format, strings.Join(AllowedFormats, ", "))
	}

	topic := NormalizeTopic(title)

	location, err := SaveFileToDisk(content, topic, format)
	if err != nil {
		return "", err
	}

	err = model.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := CreateFileRecord(tx, location, topic, int64(len(content)), format); err != nil {
			return err
		}
		if _, err := SubscribeUserToTopic(tx, userID, topic); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return topic, nil
}
