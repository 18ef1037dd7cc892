package render

// fontFamilies 将 textStyle 标识映射为具体字体声明，
// 未知标识回退到 inter。
var fontFamilies = map[string]string{
	"outfit":   "'Outfit', sans-serif",
	"inter":    "'Inter', sans-serif",
	"playfair": "'Playfair Display', serif",
}

const defaultFontStyle = "inter"

// FontFamily 解析 textStyle 对应的字体声明。
func FontFamily(textStyle string) string {
	if family, ok := fontFamilies[textStyle]; ok {
		return family
	}
	return fontFamilies[defaultFontStyle]
}

// injectedStyles 在每次渲染时插入到 </head> 之前，
// 保证不同模板下头像、文档按钮、项目配图等元素的观感一致。
const injectedStyles = `
    <!-- Enhanced Styles Injected by Generator -->
    <style>
      .profile-img { width: 100%; height: 100%; object-fit: cover; display: block; border-radius: inherit; }
      .profile-img-placeholder { width: 150px; height: 150px; background: #e2e8f0; border-radius: 50%; margin: 0 auto; display: flex; align-items: center; justify-content: center; border: 2px dashed #94a3b8; }
      .profile-img-placeholder::after { content: '👤'; font-size: 3rem; opacity: 0.5; }

      .doc-btn {
        display: inline-flex;
        align-items: center;
        gap: 12px;
        padding: 14px 28px;
        background: linear-gradient(135deg, #6366f1 0%, #4f46e5 100%);
        color: white !important;
        text-decoration: none !important;
        border-radius: 16px;
        font-weight: 700;
        margin: 10px 5px;
        transition: all 0.4s cubic-bezier(0.175, 0.885, 0.32, 1.275);
        box-shadow: 0 10px 20px rgba(99, 102, 241, 0.15);
        border: 1px solid rgba(255, 255, 255, 0.1);
      }
      .doc-btn:hover {
        transform: translateY(-4px) scale(1.02);
        box-shadow: 0 15px 30px rgba(99, 102, 241, 0.3);
        filter: brightness(1.1);
      }
      .doc-btn .icon { font-size: 1.4rem; }

      .project-img {
        width: 100%;
        height: 240px;
        object-fit: cover;
        border-radius: 16px;
        margin-bottom: 24px;
        border: 1px solid rgba(255,255,255,0.1);
        transition: transform 0.5s cubic-bezier(0.16, 1, 0.3, 1);
        display: block;
      }
      .project-img:hover {
        transform: scale(1.02);
      }

      .certificate-list { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 12px; }
      .certificate-list li a {
        color: #6366f1;
        text-decoration: none;
        font-weight: 600;
        padding: 10px 20px;
        background: rgba(99, 102, 241, 0.05);
        border: 1px solid rgba(99, 102, 241, 0.1);
        border-radius: 12px;
        font-size: 0.95rem;
        transition: all 0.3s;
        display: flex;
        align-items: center;
        gap: 8px;
      }
      .certificate-list li a:hover {
        background: rgba(99, 102, 241, 0.1);
        border-color: #6366f1;
        transform: translateY(-2px);
      }

      /* Animations */
      @keyframes blurIn {
        from { filter: blur(10px); opacity: 0; transform: translateY(20px); }
        to { filter: blur(0); opacity: 1; transform: translateY(0); }
      }
      .blur-in { animation: blurIn 0.8s cubic-bezier(0.16, 1, 0.3, 1) both; }

      .project-link {
        display: inline-block;
        margin-top: 15px;
        color: #6366f1 !important;
        text-decoration: none;
        font-weight: 600;
        transition: 0.3s;
      }
      .project-link:hover {
        padding-left: 5px;
      }
    </style>
`
