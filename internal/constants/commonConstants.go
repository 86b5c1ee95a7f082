package constants

import "time"

type (
	StoreKind   string
	CachePrefix string
)

const (
	StoreLive     StoreKind = "live"
	StoreFallback StoreKind = "fallback"

	CachePrefixCategories   CachePrefix = "BLOG_CATEGORIES"
	CachePrefixRegistration CachePrefix = "REGISTRATION_"
	CachePrefixRevokedToken CachePrefix = "REVOKED_TOKEN_"
)

const (
	CategoriesCacheTTL   = 5 * time.Minute
	RegistrationFlowTTL  = 7 * 24 * time.Hour
	DefaultTokenLifetime = 24 * time.Hour
	StoreMonitorInterval = time.Minute
)
