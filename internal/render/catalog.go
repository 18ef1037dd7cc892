package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultTemplate 是未指定模板时使用的模板标识。
const DefaultTemplate = "minimal"

// ErrTemplateNotFound 表示显式指定的模板在目录中不存在。
var ErrTemplateNotFound = errors.New("template not found")

// Catalog 从磁盘目录加载模板，每个模板对应 <dir>/<name>/template.html。
type Catalog struct {
	dir string
}

// NewCatalog 返回 Catalog。
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Load 读取并解析指定模板。
func (c *Catalog) Load(name string) (*Document, error) {
	markup, err := os.ReadFile(filepath.Join(c.dir, name, "template.html"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("template %q: %w", name, ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("load template %q: %w", name, err)
	}
	return ParseDocument(string(markup)), nil
}
