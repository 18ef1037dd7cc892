package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"profolio/internal/api/middleware"
	"profolio/internal/assets"
	"profolio/internal/portfolio"
	"profolio/internal/render"
)

const (
	maxCertificates  = 10
	maxProjectImages = 20
)

const previewEmptyState = `<div style='font-family: sans-serif; text-align: center; padding: 50px;'><h2>No portfolio data yet.</h2><p>Please complete at least step 1 of the wizard.</p></div>`

const liveEmptyState = `<div style='font-family: sans-serif; text-align: center; padding: 50px; color: #fff; background: #0f172a; height: 100vh; display: flex; flex-direction: column; justify-content: center; align-items: center;'><h2>No portfolio data yet.</h2><p>Please complete the wizard to generate your portfolio.</p><a href='/' style='color: #6366f1; margin-top: 20px;'>Go to Wizard</a></div>`

// PortfolioHandler 负责作品集的提交、预览、下载与在线页面。
type PortfolioHandler struct {
	records  *portfolio.Store
	assets   *assets.Store
	renderer *render.Renderer
}

// NewPortfolioHandler 构造 PortfolioHandler。
func NewPortfolioHandler(records *portfolio.Store, assetStore *assets.Store, renderer *render.Renderer) *PortfolioHandler {
	return &PortfolioHandler{
		records:  records,
		assets:   assetStore,
		renderer: renderer,
	}
}

// CreatePortfolio 处理向导的完整提交：先落盘新文件，再与旧记录合并。
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	logger := middleware.LoggerFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		BadRequest(c, "invalid multipart form")
		return
	}

	sub := portfolio.Submission{
		Name:         c.PostForm("name"),
		Role:         c.PostForm("role"),
		Email:        c.PostForm("email"),
		Phone:        c.PostForm("phone"),
		Location:     c.PostForm("location"),
		About:        c.PostForm("about"),
		Education:    c.PostForm("education"),
		CGPA:         c.PostForm("cgpa"),
		Experience:   c.PostForm("experience"),
		Achievements: c.PostForm("achievements"),
		Template:     c.PostForm("template"),
		TextStyle:    c.PostForm("textStyle"),
	}

	if err := parseJSONField(c.PostForm("skills"), &sub.Skills); err != nil {
		BadRequest(c, "invalid skills payload")
		return
	}
	if err := parseJSONField(c.PostForm("projects"), &sub.Projects); err != nil {
		BadRequest(c, "invalid projects payload")
		return
	}

	ctx := c.Request.Context()
	if ref, ok, err := h.storeSingle(ctx, form, "profileImage"); err != nil {
		h.uploadError(c, logger, "profileImage", err)
		return
	} else if ok {
		sub.ProfileImage = ref
	}
	if ref, ok, err := h.storeSingle(ctx, form, "resume"); err != nil {
		h.uploadError(c, logger, "resume", err)
		return
	} else if ok {
		sub.Resume = ref
	}

	certs := form.File["certificates"]
	if len(certs) > maxCertificates {
		BadRequest(c, "too many certificate files")
		return
	}
	for _, fh := range certs {
		ref, err := h.storeFile(ctx, fh)
		if err != nil {
			h.uploadError(c, logger, "certificates", err)
			return
		}
		sub.Certificates = append(sub.Certificates, ref)
	}

	// projectImages 的顺序对应提交顺序中 hasImage 为 true 的项目。
	projectImages := form.File["projectImages"]
	if len(projectImages) > maxProjectImages {
		BadRequest(c, "too many project images")
		return
	}
	for _, fh := range projectImages {
		ref, err := h.storeFile(ctx, fh)
		if err != nil {
			h.uploadError(c, logger, "projectImages", err)
			return
		}
		sub.ProjectImages = append(sub.ProjectImages, ref)
	}

	rec := h.records.Apply(sub)
	logger.Info("portfolio updated", slog.String("name", rec.Name))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Portfolio data updated"})
}

// GetPortfolio 返回当前记录的原始数据，尚无记录时返回空对象。
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	rec := h.records.Current()
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// PreviewPortfolio 渲染交互式预览，尚无记录时返回友好的空状态页。
func (h *PortfolioHandler) PreviewPortfolio(c *gin.Context) {
	if !h.records.HasRecord() {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(previewEmptyState))
		return
	}

	html, err := h.renderer.Render(c.Request.Context(), h.records.Current())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error rendering preview: %s", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DownloadPortfolio 以附件形式返回渲染结果，文件名由姓名派生。
func (h *PortfolioHandler) DownloadPortfolio(c *gin.Context) {
	if !h.records.HasRecord() {
		BadRequest(c, portfolio.ErrNoRecord.Error())
		return
	}

	rec := h.records.Current()
	html, err := h.renderer.Render(c.Request.Context(), rec)
	if err != nil {
		middleware.LoggerFromContext(c).Error("generate download", slog.String("error", err.Error()))
		Internal(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFilename(rec.Name)))
	c.Data(http.StatusOK, "text/html", []byte(html))
}

// LivePortfolio 作为"在线"页面提供渲染结果。
func (h *PortfolioHandler) LivePortfolio(c *gin.Context) {
	if !h.records.HasRecord() {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(liveEmptyState))
		return
	}

	html, err := h.renderer.Render(c.Request.Context(), h.records.Current())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error rendering portfolio: %s", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *PortfolioHandler) storeSingle(ctx context.Context, form *multipart.Form, field string) (assets.Reference, bool, error) {
	files := form.File[field]
	if len(files) == 0 {
		return "", false, nil
	}
	ref, err := h.storeFile(ctx, files[0])
	if err != nil {
		return "", false, err
	}
	return ref, true, nil
}

func (h *PortfolioHandler) storeFile(ctx context.Context, fh *multipart.FileHeader) (assets.Reference, error) {
	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return h.assets.Save(ctx, content, fh.Filename, contentType)
}

// uploadError 将上传错误映射为结构化响应：校验类 400，其余 500。
func (h *PortfolioHandler) uploadError(c *gin.Context, logger *slog.Logger, field string, err error) {
	switch {
	case errors.Is(err, assets.ErrUnsupportedType),
		errors.Is(err, assets.ErrTooLarge),
		errors.Is(err, assets.ErrMaliciousFile):
		BadRequest(c, fmt.Sprintf("Upload error: %s", err.Error()))
	default:
		logger.Error("store upload", slog.String("field", field), slog.String("error", err.Error()))
		Internal(c, "failed to store upload")
	}
}

func parseJSONField(raw string, target interface{}) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), target)
}

// downloadFilename 将姓名中的非字母数字字符替换为连字符。
func downloadFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String() + "-portfolio.html"
}
