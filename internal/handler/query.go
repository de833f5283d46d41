package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/repository"
)

type queryKind int

const (
	queryString queryKind = iota
	queryBool
)

// filterFromQuery builds an equality filter from the whitelisted query
// parameters. Unknown keys and unparsable values are ignored.
func filterFromQuery(c *gin.Context, allow map[string]queryKind) repository.Filter {
	filter := repository.Filter{}
	for key, kind := range allow {
		val := strings.TrimSpace(c.Query(key))
		if val == "" {
			continue
		}
		switch kind {
		case queryBool:
			if b, err := strconv.ParseBool(val); err == nil {
				filter[key] = b
			}
		default:
			filter[key] = val
		}
	}
	return filter
}
