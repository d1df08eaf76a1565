package pack

// TemplateInfo describes one entry of the template catalog shown to clients.
type TemplateInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"` // educational, service, product, universal
}

// DefaultTemplateKey is used when a script request does not name a template.
const DefaultTemplateKey = "Story"

// Catalog returns the fixed set of content templates.
func Catalog() []TemplateInfo {
	return []TemplateInfo{
		{ID: "Idea120", Title: "۱۲۰ ایده محتوا", Description: "تولید ۱۲۰ ایده منحصربه‌فرد برای محتوای شما", Category: "universal"},
		{ID: "PainDiscovery-edu", Title: "کشف درد آموزشی", Description: "شناسایی نیازهای آموزشی مخاطبان", Category: "educational"},
		{ID: "PainDiscovery-service", Title: "کشف درد خدماتی", Description: "شناسایی چالش‌های خدماتی مشتریان", Category: "service"},
		{ID: "PainDiscovery-product", Title: "کشف درد محصولی", Description: "شناسایی نیازهای محصولی کاربران", Category: "product"},
		{ID: "Story", Title: "روایت", Description: "ساخت داستان جذاب و قابل ارتباط", Category: "universal"},
		{ID: "Limit", Title: "محدودیت", Description: "ایجاد حس فوریت و محدودیت زمانی", Category: "universal"},
		{ID: "Contrast", Title: "تضاد", Description: "نمایش تضاد بین باور و واقعیت", Category: "universal"},
		{ID: "WrongRight", Title: "غلط/درست", Description: "مقایسه روش غلط و درست انجام کار", Category: "universal"},
		{ID: "ProNovice", Title: "مبتدی/حرفه‌ای", Description: "تفاوت رفتار مبتدی و حرفه‌ای", Category: "universal"},
		{ID: "Warning", Title: "هشدار", Description: "هشدار درباره اشتباهات رایج", Category: "universal"},
		{ID: "NoWords", Title: "بدون کلام", Description: "محتوای تصویری بدون نیاز به توضیح", Category: "universal"},
		{ID: "Suspense", Title: "تعلیق", Description: "ایجاد کنجکاوی و تعلیق وایرال", Category: "universal"},
		{ID: "Review", Title: "نقد و بررسی", Description: "نقد صادقانه محصول یا خدمت", Category: "universal"},
		{ID: "Empathy", Title: "همذات‌پنداری", Description: "ایجاد ارتباط عاطفی با مخاطب", Category: "universal"},
		{ID: "Choice", Title: "دو راهی", Description: "ارائه دو گزینه برای تصمیم‌گیری", Category: "universal"},
		{ID: "Compare", Title: "مقایسه", Description: "مقایسه دو گزینه بر اساس معیارها", Category: "universal"},
		{ID: "Fortune", Title: "فال‌گیری", Description: "پیش‌بینی بر اساس نشانه‌ها", Category: "universal"},
		{ID: "ToDo", Title: "چک‌لیست", Description: "راهنمای گام به گام عملی", Category: "universal"},
		{ID: "VisualExample", Title: "مثال تصویری", Description: "آموزش از طریق مثال قابل نمایش", Category: "universal"},
	}
}

// KnownTemplate reports whether id is part of the catalog.
func KnownTemplate(id string) bool {
	for _, t := range Catalog() {
		if t.ID == id {
			return true
		}
	}
	return false
}
