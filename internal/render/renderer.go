package render

import (
	"context"
	"fmt"
	"strings"

	"profolio/internal/assets"
	"profolio/internal/portfolio"
)

// AssetInliner 将资产引用解析为可嵌入的 data URI 表示。
// 引用无法解析时返回 (nil, nil)。
type AssetInliner interface {
	Inline(ctx context.Context, ref assets.Reference) (*assets.InlineAsset, error)
}

// Renderer 把当前记录渲染为自包含的 HTML 文档。
// 字段内容原样插入，不做转义；给定相同记录与资产字节，输出是确定的。
type Renderer struct {
	catalog *Catalog
	inliner AssetInliner
}

// NewRenderer 返回 Renderer。
func NewRenderer(catalog *Catalog, inliner AssetInliner) *Renderer {
	return &Renderer{catalog: catalog, inliner: inliner}
}

// Render 渲染记录。模板标识为空时回退到 DefaultTemplate；
// 显式指定但不存在的模板返回 ErrTemplateNotFound。
func (r *Renderer) Render(ctx context.Context, rec *portfolio.Record) (string, error) {
	templateName := rec.Template
	if templateName == "" {
		templateName = DefaultTemplate
	}

	doc, err := r.catalog.Load(templateName)
	if err != nil {
		return "", err
	}

	values := map[string]string{
		"name":         fallback(rec.Name, "Your Name"),
		"role":         fallback(rec.Role, "Professional Role"),
		"email":        rec.Email,
		"phone":        rec.Phone,
		"location":     rec.Location,
		"about":        rec.About,
		"education":    rec.Education,
		"cgpa":         fallback(rec.CGPA, "N/A"),
		"experience":   fallback(rec.Experience, "0"),
		"achievements": rec.Achievements,
		"fontFamily":   FontFamily(rec.TextStyle),
	}

	profileImage, err := r.profileImageHTML(ctx, rec)
	if err != nil {
		return "", err
	}
	values["profileImage"] = profileImage

	values["skills"] = skillsHTML(rec.Skills)

	projects, err := r.projectsHTML(ctx, rec)
	if err != nil {
		return "", err
	}
	values["projects"] = projects

	resume, err := r.resumeHTML(ctx, rec)
	if err != nil {
		return "", err
	}
	values["resume"] = resume

	certificates, err := r.certificatesHTML(ctx, rec)
	if err != nil {
		return "", err
	}
	values["certificates"] = certificates

	html := doc.Render(values)
	html = strings.Replace(html, "</head>", injectedStyles+"\n</head>", 1)
	return html, nil
}

func (r *Renderer) profileImageHTML(ctx context.Context, rec *portfolio.Record) (string, error) {
	asset, err := r.inliner.Inline(ctx, rec.ProfileImage)
	if err != nil {
		return "", err
	}
	if asset == nil {
		return `<div class="profile-img-placeholder"></div>`, nil
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" class="profile-img">`, asset.DataURI, rec.Name), nil
}

func skillsHTML(skills []string) string {
	var b strings.Builder
	for _, skill := range skills {
		b.WriteString("<li>")
		b.WriteString(skill)
		b.WriteString("</li>")
	}
	return b.String()
}

// projectsHTML 渲染项目块。图片游标仅在 HasImage 为 true 时前进，
// 即使对应的图片无法解析也前进，避免后续项目错位取图。
func (r *Renderer) projectsHTML(ctx context.Context, rec *portfolio.Record) (string, error) {
	var b strings.Builder
	cursor := 0
	for _, project := range rec.Projects {
		imageHTML := ""
		if project.HasImage && cursor < len(rec.ProjectImages) {
			asset, err := r.inliner.Inline(ctx, rec.ProjectImages[cursor])
			if err != nil {
				return "", err
			}
			if asset != nil {
				imageHTML = fmt.Sprintf(`<img src="%s" class="project-img" alt="%s">`, asset.DataURI, project.Title)
			}
			cursor++
		}

		linkHTML := ""
		if project.Link != "" {
			linkHTML = fmt.Sprintf(`<a href="%s" target="_blank" class="project-link">Explore Case Study →</a>`, project.Link)
		}

		fmt.Fprintf(&b, `
      <div class="card project blur-in">
        %s
        <h4>%s</h4>
        <p>%s</p>
        %s
      </div>
    `, imageHTML, project.Title, project.Description, linkHTML)
	}
	return b.String(), nil
}

func (r *Renderer) resumeHTML(ctx context.Context, rec *portfolio.Record) (string, error) {
	asset, err := r.inliner.Inline(ctx, rec.Resume)
	if err != nil {
		return "", err
	}
	if asset == nil {
		return "", nil
	}
	return fmt.Sprintf(`<a href="%s" class="doc-btn" download="%s-Resume.%s">
         <span class="icon">📄</span> Download / View Resume
       </a>`, asset.DataURI, rec.Name, rec.Resume.Ext()), nil
}

func (r *Renderer) certificatesHTML(ctx context.Context, rec *portfolio.Record) (string, error) {
	var b strings.Builder
	b.WriteString(`<ul class="certificate-list">`)
	for _, ref := range rec.Certificates {
		asset, err := r.inliner.Inline(ctx, ref)
		if err != nil {
			return "", err
		}
		if asset == nil {
			continue
		}
		label := ref.DisplayName()
		fmt.Fprintf(&b, `<li><a href="%s" download="Certificate-%s">📜 %s</a></li>`, asset.DataURI, label, label)
	}
	b.WriteString(`</ul>`)
	return b.String(), nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
