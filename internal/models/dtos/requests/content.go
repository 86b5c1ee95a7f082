package requests

// Create requests use plain fields; patch requests use pointers so absent keys
// leave the stored value alone.

type EventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date" validate:"required"`
	SignupURL   string `json:"signup_url"`
}

type EventPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Date        *string `json:"date"`
	SignupURL   *string `json:"signup_url"`
}

type BlogRequest struct {
	Title      string  `json:"title" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	Excerpt    string  `json:"excerpt"`
	Image      string  `json:"image"`
	Date       string  `json:"date"`
	Author     string  `json:"author" validate:"required"`
	ReadTime   string  `json:"read_time"`
	CategoryID *string `json:"category_id"`
	Featured   bool    `json:"featured"`
}

type BlogPatch struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Excerpt    *string `json:"excerpt"`
	Image      *string `json:"image"`
	Date       *string `json:"date"`
	Author     *string `json:"author"`
	ReadTime   *string `json:"read_time"`
	CategoryID *string `json:"category_id"`
	Featured   *bool   `json:"featured"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug"`
}

type TeamMemberRequest struct {
	Name         string `json:"name" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Headshot     string `json:"headshot"`
	Bio          string `json:"bio"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type TeamMemberPatch struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Category     *string `json:"category"`
	Headshot     *string `json:"headshot"`
	Bio          *string `json:"bio"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}
