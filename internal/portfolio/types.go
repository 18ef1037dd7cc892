package portfolio

import "profolio/internal/assets"

// Project 表示作品集中的单个项目条目。
// HasImage 记录提交时是否附带了项目配图，渲染时据此消费 ProjectImages。
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	HasImage    bool   `json:"hasImage"`
}

// Record 是当前生效的作品集数据，进程内最多存在一份。
type Record struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	About        string `json:"about,omitempty"`
	Education    string `json:"education,omitempty"`
	CGPA         string `json:"cgpa,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Achievements string `json:"achievements,omitempty"`
	Template     string `json:"template,omitempty"`
	TextStyle    string `json:"textStyle,omitempty"`

	Skills   []string  `json:"skills"`
	Projects []Project `json:"projects"`

	ProfileImage assets.Reference `json:"profileImage,omitempty"`
	Resume       assets.Reference `json:"resume,omitempty"`
	// Certificates 与 ProjectImages 按提交顺序保存。
	// ProjectImages[i] 对应第 i 个 HasImage 为 true 的项目。
	Certificates  []assets.Reference `json:"certificates,omitempty"`
	ProjectImages []assets.Reference `json:"projectImages,omitempty"`
}

// Submission 是一次完整的表单提交：标量与列表字段全量覆盖，
// 资产字段仅在本次携带了新文件时才有值。
type Submission struct {
	Name         string
	Role         string
	Email        string
	Phone        string
	Location     string
	About        string
	Education    string
	CGPA         string
	Experience   string
	Achievements string
	Template     string
	TextStyle    string

	Skills   []string
	Projects []Project

	ProfileImage  assets.Reference
	Resume        assets.Reference
	Certificates  []assets.Reference
	ProjectImages []assets.Reference
}
