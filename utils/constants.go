// File: utils/constants.go
package utils

// StatsCachePrefix is the prefix of per-user dashboard stats cache keys.
const StatsCachePrefix = "dashboard:stats:"

// TrendingSearchesKey is the sorted set holding search query frequencies.
const TrendingSearchesKey = "search:trending"

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "userID"
