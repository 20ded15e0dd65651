package pagination

import (
	"encoding/base64"
	"strconv"
	"strings"
)

const defaultPageSize = 50

// Pagination is embedded in list query bindings.
type Pagination struct {
	PageToken string `form:"page_token"`
	PageSize  int    `form:"page_size"`
}

// PageInfo is embedded in list responses.
type PageInfo struct {
	NextPageToken string `json:"next_page_token,omitempty"`
	TotalSize     int64  `json:"total_size"`
}

// Limit clamps the requested page size.
func (p Pagination) Limit() int {
	if p.PageSize <= 0 || p.PageSize > 200 {
		return defaultPageSize
	}
	return p.PageSize
}

// Offset decodes the opaque page token; a malformed token starts from zero.
func (p Pagination) Offset() int {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(p.PageToken))
	if err != nil {
		return 0
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// NextToken encodes the follow-up offset, or "" when the page was short.
func NextToken(offset, limit, fetched int) string {
	if fetched < limit {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset + fetched)))
}
