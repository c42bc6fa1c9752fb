// Package storage 將上傳的履歷存放在本機目錄並以靜態路徑對外提供
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/logger"

	"github.com/google/uuid"
)

// Store 履歷檔案存取
type Store interface {
	// Save 儲存上傳檔並回傳公開參照，例如 /resumes/<uuid>.pdf
	Save(fh *multipart.FileHeader) (string, error)
	// Remove 依公開參照刪除檔案，檔案不存在視為成功
	Remove(ref string) error
}

// Local 以 <uuid><副檔名> 命名存放於 dir
type Local struct {
	dir    string
	prefix string
}

var newID = func() string { return uuid.NewString() }

// allowedExts 履歷只接受 PDF 與 Word
var allowedExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

const msgUnsupportedResume = "Resume must be a PDF or Word document."

// NewLocal 建立目錄（若不存在）；prefix 為對外 URL 前綴，例如 /resumes
func NewLocal(dir, prefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("建立履歷目錄 %s 失敗: %w", dir, err)
	}
	return &Local{dir: dir, prefix: "/" + strings.Trim(prefix, "/")}, nil
}

func (l *Local) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", apperrors.Validation(msgUnsupportedResume)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("開啟上傳檔失敗: %w", err)
	}
	defer src.Close()

	name := newID() + ext
	dstPath := filepath.Join(l.dir, name)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("建立履歷檔失敗: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("寫入履歷檔失敗: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("寫入履歷檔失敗: %w", err)
	}

	logger.Debug().Str("filename", fh.Filename).Str("saved_as", name).Msg("履歷已儲存")
	return path.Join(l.prefix, name), nil
}

func (l *Local) Remove(ref string) error {
	name := path.Base(ref)
	if ref == "" || name == "." || name == "/" {
		return fmt.Errorf("無效的履歷參照: %q", ref)
	}
	if err := os.Remove(filepath.Join(l.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("刪除履歷檔失敗: %w", err)
	}
	return nil
}

// Dir 回傳實體目錄，供靜態檔案路由使用
func (l *Local) Dir() string {
	return l.dir
}

// Prefix 回傳對外 URL 前綴
func (l *Local) Prefix() string {
	return l.prefix
}

type FakeStore struct {
	SaveFn   func(fh *multipart.FileHeader) (string, error)
	RemoveFn func(ref string) error
}

func (f *FakeStore) Save(fh *multipart.FileHeader) (string, error) {
	if f.SaveFn != nil {
		return f.SaveFn(fh)
	}
	panic("unexpected Save")
}

func (f *FakeStore) Remove(ref string) error {
	if f.RemoveFn != nil {
		return f.RemoveFn(ref)
	}
	panic("unexpected Remove")
}
