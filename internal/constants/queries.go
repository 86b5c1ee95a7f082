package constants

const (
	SelectActiveTeamMembers = `
	SELECT id, name, title, category, headshot, bio, display_order, is_active, created_at, updated_at
	FROM team_members
	WHERE is_active = TRUE
	ORDER BY display_order ASC, name ASC
	`

	SelectActiveTeamMembersByCategory = `
	SELECT id, name, title, category, headshot, bio, display_order, is_active, created_at, updated_at
	FROM team_members
	WHERE is_active = TRUE AND category = $1
	ORDER BY display_order ASC, name ASC
	`
)
