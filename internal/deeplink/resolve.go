// Package deeplink resolves validated app deep links (qrcodeapp://...) into
// in-app navigation targets. The caller guarantees the scheme prefix; the
// remainder of the path is untrusted and may be empty or malformed.
//
// This is deliberately not general URL parsing: matching is substring-based
// over an app-proprietary scheme, and unknown paths fall back to the Home
// screen rather than failing. The error path exists only to guard truly
// malformed inputs.
package deeplink

import (
	"errors"
	"fmt"
	"strings"
)

// Screen names recognized by the in-app router.
const (
	ScreenHome       = "Home"
	ScreenUsers      = "Users"
	ScreenUserDetail = "UserDetail"
	ScreenScanner    = "Scanner"
)

// ErrResolution is returned (wrapped) when a deep link cannot be mapped to a
// target. Rare by construction: the path matcher ends in a Home fallback, so
// this guards parser panics, not unknown paths.
var ErrResolution = errors.New("deep link resolution failed")

// Target describes an in-app navigation destination. It is constructed per
// successful resolution, handed to the router, and not retained.
type Target struct {
	Screen string            `json:"screen"`
	Params map[string]string `json:"params,omitempty"`
}

// Resolve maps an app deep link to a navigation target.
//
// Path matching, in priority order:
//   - "user/<id>" → UserDetail with params{id}; "user/" with empty id → Users
//   - "users"     → Users
//   - "scanner"   → Scanner (caller should treat as "already there")
//   - "home"      → Home
//   - "profile"   → Users (alias)
//   - "dashboard" → Home (alias)
//   - anything else → Home (default fallback, not a failure)
//
// On an internal parsing panic the raw input is preserved in the returned
// error so the caller can present it instead of navigating blindly.
func Resolve(appLink string) (t *Target, err error) {
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("%w: %q: %v", ErrResolution, appLink, r)
		}
	}()

	path := appLink
	if i := strings.Index(appLink, "://"); i >= 0 {
		path = appLink[i+3:]
	}

	switch {
	case strings.Contains(path, "user/"):
		id := path[strings.Index(path, "user/")+len("user/"):]
		if id == "" {
			return &Target{Screen: ScreenUsers}, nil
		}
		return &Target{Screen: ScreenUserDetail, Params: map[string]string{"id": id}}, nil
	case strings.Contains(path, "users"):
		return &Target{Screen: ScreenUsers}, nil
	case strings.Contains(path, "scanner"):
		return &Target{Screen: ScreenScanner}, nil
	case strings.Contains(path, "home"):
		return &Target{Screen: ScreenHome}, nil
	case strings.Contains(path, "profile"):
		return &Target{Screen: ScreenUsers}, nil
	case strings.Contains(path, "dashboard"):
		return &Target{Screen: ScreenHome}, nil
	default:
		return &Target{Screen: ScreenHome}, nil
	}
}
