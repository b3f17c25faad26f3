// Package constants holds application-wide constants.
package constants

const (
	// Pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Gin context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"

	// Environments
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Database table names
	TableUsers             = "users"
	TableTickets           = "tickets"
	TableTicketComments    = "ticket_comments"
	TableTicketAttachments = "ticket_attachments"
	TableTicketSequences   = "ticket_sequences"
)
