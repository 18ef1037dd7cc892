package render

import "strings"

// Document 是解析后的模板：字面片段与命名占位符的序列。
// 占位符语法为 {{name}}。
type Document struct {
	segments []segment
}

type segment struct {
	literal string
	// token 非空时该片段是占位符。
	token string
}

// ParseDocument 将模板文本切分为字面片段与占位符。
// 未闭合的 "{{" 按字面文本处理。
func ParseDocument(markup string) *Document {
	doc := &Document{}
	for {
		open := strings.Index(markup, "{{")
		if open < 0 {
			break
		}
		closing := strings.Index(markup[open+2:], "}}")
		if closing < 0 {
			break
		}
		if open > 0 {
			doc.segments = append(doc.segments, segment{literal: markup[:open]})
		}
		doc.segments = append(doc.segments, segment{token: markup[open+2 : open+2+closing]})
		markup = markup[open+2+closing+2:]
	}
	if markup != "" {
		doc.segments = append(doc.segments, segment{literal: markup})
	}
	return doc
}

// Render 用给定的值表替换每个占位符。
// 值表中不存在的占位符按原样输出（保持字面形式），
// 内容一律原样插入，不做任何转义。
func (d *Document) Render(values map[string]string) string {
	var b strings.Builder
	for _, seg := range d.segments {
		if seg.token == "" {
			b.WriteString(seg.literal)
			continue
		}
		if value, ok := values[seg.token]; ok {
			b.WriteString(value)
		} else {
			b.WriteString("{{")
			b.WriteString(seg.token)
			b.WriteString("}}")
		}
	}
	return b.String()
}
