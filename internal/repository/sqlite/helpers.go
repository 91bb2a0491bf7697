package sqlite

import "github.com/Masterminds/squirrel"

// Shared statement builder for the sqlite implementations.
var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var profileColumns = []string{
	"id", "name", "year", "skills", "interests", "whatsapp", "twitter",
	"whatsapp_visible", "twitter_visible", "created_at",
}

var teamColumns = []string{
	"id", "user_id", "team_name", "hackathon_name", "needed_skills",
	"timeline", "whatsapp_group", "description", "created_at",
}
