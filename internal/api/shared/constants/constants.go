package constants

const (
	MAX_PAGE_SIZE               = 100
	MAX_MAP_RESULTS             = 500
	MAX_SEARCH_TERM_LENGTH      = 200
	MAX_IMAGES_PER_PROPERTY     = 20
	MAX_SLUG_ATTEMPTS           = 5
	DEFAULT_PAGE                = 1
	DEFAULT_PROPERTIES_LIMIT    = 20
	DEFAULT_SAVED_LIMIT         = 20
	DEFAULT_NOTIFICATIONS_LIMIT = 20
	DEFAULT_BLOG_LIMIT          = 10
	DEFAULT_MAP_LIMIT           = 200
)
