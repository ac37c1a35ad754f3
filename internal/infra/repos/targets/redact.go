package targets

import (
	"net/url"
	"strings"

	"github.com/mmrzaf/bizgen/internal/domain"
)

const redacted = "****"

var secretKeys = map[string]struct{}{
	"password":    {},
	"pass":        {},
	"pwd":         {},
	"sslpassword": {},
}

// RedactDSN masks credentials for logs and listings. URL DSNs keep host and
// database, keyword DSNs keep every non-secret pair; anything else, such as
// a sqlite file path, is masked whole.
func RedactDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return ""
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		return redactURL(u)
	}
	if out, ok := redactKeywords(dsn); ok {
		return out
	}
	return redacted
}

func redactURL(u *url.URL) string {
	if u.User != nil {
		u.User = url.UserPassword(u.User.Username(), redacted)
	}
	q := u.Query()
	for k := range q {
		if isSecretKey(k) {
			q.Set(k, redacted)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// redactKeywords handles "host=db user=x password=y". ok is false when no
// secret key was present.
func redactKeywords(dsn string) (string, bool) {
	parts := strings.Fields(dsn)
	found := false
	for i, p := range parts {
		k, _, hasValue := strings.Cut(p, "=")
		if hasValue && isSecretKey(k) {
			parts[i] = k + "=" + redacted
			found = true
		}
	}
	if !found {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func isSecretKey(k string) bool {
	_, ok := secretKeys[strings.ToLower(k)]
	return ok
}

// RedactTarget returns a copy of t safe to print.
func RedactTarget(t *domain.TargetConfig) *domain.TargetConfig {
	if t == nil {
		return nil
	}
	cp := *t
	cp.DSN = RedactDSN(cp.DSN)
	if len(t.Options) > 0 {
		cp.Options = make(map[string]string, len(t.Options))
		for k, v := range t.Options {
			if isSecretKey(k) {
				v = redacted
			}
			cp.Options[k] = v
		}
	}
	return &cp
}

func RedactTargets(list []*domain.TargetConfig) []*domain.TargetConfig {
	out := make([]*domain.TargetConfig, len(list))
	for i, t := range list {
		out[i] = RedactTarget(t)
	}
	return out
}
