// internal/app/system/access/access.go
package access

import (
	"strconv"
	"strings"
)

// AdminList is the set of Telegram user ids allowed to use admin features.
//
// Admin identity comes from the Telegram update itself; there is no login
// step, so the list is fixed at startup from configuration.
type AdminList []int64

// ParseAdminIDs parses a comma-separated id list ("123, 456") into an
// AdminList. Blank and malformed entries are skipped so a trailing comma
// in configuration does not abort startup.
func ParseAdminIDs(raw string) AdminList {
	var ids AdminList
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// IsAdmin reports whether the given Telegram user id is an admin.
func (a AdminList) IsAdmin(userID int64) bool {
	for _, id := range a {
		if id == userID {
			return true
		}
	}
	return false
}
