// Package access decides, per request, whether a visitor is let through or
// redirected to login, payment or the dashboard.
//
// Decide is pure: it reads only its arguments. Callers pass the session
// snapshot they already decoded, so a change to the persisted access flag is
// invisible here until the session token is refreshed.
package access

import "strings"

type PathCategory int

const (
	Other PathCategory = iota
	ProtectedApp
	AuthPages
)

func (p PathCategory) String() string {
	switch p {
	case ProtectedApp:
		return "protected_app"
	case AuthPages:
		return "auth_pages"
	default:
		return "other"
	}
}

type Decision int

const (
	Allow Decision = iota
	DenyToLogin
	RedirectToPayment
	RedirectToDashboard
)

const (
	LoginPath     = "/login"
	SignupPath    = "/signup"
	PaymentPath   = "/payment"
	DashboardPath = "/app/dashboard"
	appRoot       = "/app"
)

func (d Decision) String() string {
	switch d {
	case DenyToLogin:
		return "deny_to_login"
	case RedirectToPayment:
		return "redirect_to_payment"
	case RedirectToDashboard:
		return "redirect_to_dashboard"
	default:
		return "allow"
	}
}

// Target is the redirect location for d, or "" for Allow.
func (d Decision) Target() string {
	switch d {
	case DenyToLogin:
		return LoginPath
	case RedirectToPayment:
		return PaymentPath
	case RedirectToDashboard:
		return DashboardPath
	default:
		return ""
	}
}

// Decide maps auth state and path category to a decision.
//
//	loggedIn hasAccess path          decision
//	false    -         ProtectedApp  DenyToLogin
//	true     false     ProtectedApp  RedirectToPayment
//	true     true      ProtectedApp  Allow
//	true     true      AuthPages     RedirectToDashboard
//	true     false     AuthPages     RedirectToPayment
//	false    -         AuthPages     Allow
//	-        -         Other         Allow
//
// hasAccess is ignored for anonymous visitors.
func Decide(isLoggedIn, hasAccess bool, path PathCategory) Decision {
	switch path {
	case ProtectedApp:
		if !isLoggedIn {
			return DenyToLogin
		}
		if !hasAccess {
			return RedirectToPayment
		}
		return Allow
	case AuthPages:
		if !isLoggedIn {
			return Allow
		}
		if hasAccess {
			return RedirectToDashboard
		}
		return RedirectToPayment
	default:
		return Allow
	}
}

// Categorize classifies a request path. Prefixes match whole segments, so
// "/apple" is Other while "/app" and "/app/pets/1" are ProtectedApp.
func Categorize(path string) PathCategory {
	switch {
	case underSegment(path, appRoot):
		return ProtectedApp
	case underSegment(path, LoginPath), underSegment(path, SignupPath):
		return AuthPages
	default:
		return Other
	}
}

func underSegment(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+"/")
}
