// internal/endpoint/url.go
package endpoint

import (
	"fmt"
	"net/url"
	"strings"

	"leetcode_journey/internal/model"
)

// NormalizeBaseURL は raw が http(s) の URL であることを確認し、
// スキームとホストを小文字にして末尾のスラッシュを取り除いて返します。
// <base>/log を組み立てるのでクエリやフラグメントは受け付けない。
func NormalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", model.ErrInvalidURL, raw, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: %q: scheme must be http or https", model.ErrInvalidURL, raw)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q: missing host", model.ErrInvalidURL, raw)
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q: query and fragment are not allowed", model.ErrInvalidURL, raw)
	}
	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	return strings.TrimRight(u.String(), "/"), nil
}

// LogURL はベースURLから送信先 (<base>/log) を組み立てます
func LogURL(baseURL string) string {
	return baseURL + "/log"
}
