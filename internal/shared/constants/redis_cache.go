package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for the Wayfare application.
// Pattern: wayfare:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_SHORT  = 6 * time.Hour   // user profiles
	TTL_SEMI_STATIC   = 1 * time.Hour   // individual travel option details
	TTL_DYNAMIC_SHORT = 5 * time.Minute // travel listings with live seat counts
	TTL_DYNAMIC_QUICK = 2 * time.Minute // upcoming departures
	TTL_STATS         = 10 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "wayfare"
)

// ================== TRAVEL MODULE ==================

const (
	CACHE_KEY_TRAVEL_LIST     = CACHE_PREFIX + ":travel:list"         // + :page:X:limit:Y:filters
	CACHE_KEY_TRAVEL_UPCOMING = CACHE_PREFIX + ":travel:upcoming"     // + :limit:X
	CACHE_KEY_TRAVEL_DETAIL   = CACHE_PREFIX + ":travel:detail:uuid:" // + travel-option-id

	PATTERN_INVALIDATE_TRAVEL_ALL = CACHE_PREFIX + ":travel:*"
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_STATS_HOME = CACHE_PREFIX + ":analytics:home"

	PATTERN_INVALIDATE_STATS = CACHE_PREFIX + ":analytics:*"
)

// BuildTravelListKey builds the cache key for a filtered travel listing page.
func BuildTravelListKey(page, limit int, travelType, source, destination string) string {
	return fmt.Sprintf("%s:page:%d:limit:%d:type:%s:src:%s:dst:%s",
		CACHE_KEY_TRAVEL_LIST, page, limit, travelType, source, destination)
}

// BuildTravelDetailKey builds the cache key for one travel option.
func BuildTravelDetailKey(id string) string {
	return CACHE_KEY_TRAVEL_DETAIL + id
}
