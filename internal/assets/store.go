package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/minio/minio-go/v7"
)

// MaxUploadBytes 是单个上传文件的默认大小上限。
const MaxUploadBytes = 10 * 1024 * 1024

var (
	// ErrUnsupportedType 表示扩展名或声明的 Content-Type 不在允许范围内。
	ErrUnsupportedType = errors.New("only PDF, JPG, JPEG, PNG, and WEBP files are allowed")
	// ErrTooLarge 表示文件超出大小上限。
	ErrTooLarge = errors.New("file exceeds upload size limit")
	// ErrMaliciousFile 表示病毒扫描未通过。
	ErrMaliciousFile = errors.New("malicious file detected")
)

// allowedTokens 同时约束扩展名与声明的 Content-Type。
var allowedTokens = []string{"pdf", "jpg", "jpeg", "png", "webp"}

// ObjectStore 是 Store 依赖的对象存储写接口，由 storage.Client 实现。
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
}

// Reference 是已存储资产的对象键。
type Reference string

// DisplayName 返回去掉唯一性前缀（时间戳与序号两段）后的原始文件名。
func (r Reference) DisplayName() string {
	parts := strings.Split(string(r), "-")
	if len(parts) <= 2 {
		return string(r)
	}
	return strings.Join(parts[2:], "-")
}

// Ext 返回引用的小写扩展名（不含点）。
func (r Reference) Ext() string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(string(r))), ".")
}

// Store 负责校验并持久化上传的二进制资产。
// 被替换的旧资产不会被清理，这是已知的取舍。
type Store struct {
	objects   ObjectStore
	maxBytes  int64
	clamdAddr string

	seq atomic.Uint64
}

// NewStore 返回 Store。clamdAddr 为空时不做病毒扫描。
func NewStore(objects ObjectStore, maxBytes int64, clamdAddr string) *Store {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	return &Store{
		objects:   objects,
		maxBytes:  maxBytes,
		clamdAddr: clamdAddr,
	}
}

// Save 校验并写入一个上传文件，返回生成的对象键。
// 键格式为 <毫秒时间戳>-<进程内序号>-<净化后的原始文件名>，
// 序号单调递增，保证并发写入不冲突。
func (s *Store) Save(ctx context.Context, content []byte, originalName, contentType string) (Reference, error) {
	if int64(len(content)) > s.maxBytes {
		return "", ErrTooLarge
	}
	if !extAllowed(originalName) || !contentTypeAllowed(contentType) {
		return "", ErrUnsupportedType
	}

	if s.clamdAddr != "" {
		if err := s.scan(content); err != nil {
			return "", err
		}
	}

	key := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), s.seq.Add(1), SanitizeName(originalName))
	if _, err := s.objects.UploadFile(ctx, key, bytes.NewReader(content), int64(len(content)), contentType); err != nil {
		return "", fmt.Errorf("store asset %q: %w", key, err)
	}
	return Reference(key), nil
}

func (s *Store) scan(content []byte) error {
	clamdClient := clamd.NewClamd(s.clamdAddr)

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(bytes.NewReader(content), abortChan)
	if err != nil {
		return fmt.Errorf("scan file: %w", err)
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return ErrMaliciousFile
		}
	}
	return nil
}

// SanitizeName 将文件名中 [A-Za-z0-9.] 之外的字符替换为下划线并转为小写。
func SanitizeName(name string) string {
	if name == "" {
		name = "upload"
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func extAllowed(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	for _, token := range allowedTokens {
		if ext == token {
			return true
		}
	}
	return false
}

func contentTypeAllowed(contentType string) bool {
	lower := strings.ToLower(contentType)
	for _, token := range allowedTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
