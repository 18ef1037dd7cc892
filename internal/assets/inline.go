package assets

import (
	"context"
	"encoding/base64"
	"fmt"

	"profolio/internal/storage"
)

// ObjectReader 是 Inliner 依赖的对象存储读接口，由 storage.Client 实现。
type ObjectReader interface {
	ReadObject(ctx context.Context, objectKey string) ([]byte, error)
}

// InlineAsset 是可直接嵌入 HTML 的自包含资产表示。
type InlineAsset struct {
	ContentType string
	DataURI     string
}

// Inliner 将已存储的资产读取为 data URI，渲染结果因此可离线打开。
type Inliner struct {
	objects ObjectReader
}

// NewInliner 返回 Inliner。
func NewInliner(objects ObjectReader) *Inliner {
	return &Inliner{objects: objects}
}

// Inline 读取引用指向的对象并编码为 data URI。
// 对象不存在按"缺失"处理，返回 (nil, nil) 而非错误。
func (i *Inliner) Inline(ctx context.Context, ref Reference) (*InlineAsset, error) {
	if ref == "" {
		return nil, nil
	}

	data, err := i.objects.ReadObject(ctx, string(ref))
	if err != nil {
		if storage.IsNoSuchKey(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("inline asset %q: %w", ref, err)
	}

	contentType := MIMEByExt(ref.Ext())
	return &InlineAsset{
		ContentType: contentType,
		DataURI:     fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
	}, nil
}

// MIMEByExt 根据扩展名推断 MIME 类型，未知类型回退 application/octet-stream。
func MIMEByExt(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
