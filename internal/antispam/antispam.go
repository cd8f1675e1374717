// Package antispam holds the contact-form abuse heuristics: honeypot and
// user-agent checks, field validators, the disposable-domain denylist, spam
// signatures, and the form security token. All checks are pure functions so
// the pipeline in service/contact stays a readable sequence.
package antispam

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
)

// Domains of known throwaway inboxes. Matched against the part after '@',
// case-insensitively.
var disposableEmailDomains = []string{
	"tempmail.com", "throwaway.email", "guerrillamail.com", "mailinator.com",
	"temp-mail.org", "fakeinbox.com", "getnada.com", "trashmail.com",
	"10minutemail.com", "yopmail.com", "mohmal.com", "maildrop.cc",
	"sharklasers.com", "guerrillamail.info", "grr.la", "spam4.me",
	"dispostable.com", "mailnesia.com", "tempail.com", "tempr.email",
	"discard.email", "spamgourmet.com", "mytrashmail.com", "mt2009.com",
	"throwawaymail.com", "jetable.org", "anonymbox.com", "emailondeck.com",
	"fakemailgenerator.com", "mintemail.com", "mailcatch.com",
}

// Substrings flagging automated clients in the User-Agent header.
var botUserAgents = []string{
	"bot", "crawler", "spider", "scraper", "curl", "wget", "python",
	"java", "perl", "ruby", "go-http-client", "httpclient", "mechanize",
	"phantom", "selenium", "headless", "puppeteer", "playwright",
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	anglePattern = regexp.MustCompile(`[<>]`)

	spamKeywordPattern = regexp.MustCompile(`(?i)\b(viagra|casino|lottery|winner|congratulations|click here|free money|bitcoin|crypto)\b`)
	urlRunPattern      = regexp.MustCompile(`(?i)(http[s]?://[^\s]+){3,}`)
	seoKeywordPattern  = regexp.MustCompile(`(?i)\b(SEO|backlink|ranking|traffic|promotion)\b`)
)

// tokenSalt is baked into the client bundle; the token is lightweight
// friction, not a cryptographic guarantee.
const tokenSalt = "portfolio-jcn"

// HoneypotTriggered reports whether any hidden form field carries a value.
func HoneypotTriggered(fields []string) bool {
	for _, f := range fields {
		if len(f) > 0 {
			return true
		}
	}
	return false
}

// IsBotUserAgent reports whether the user agent contains a known
// bot/tooling substring.
func IsBotUserAgent(userAgent string) bool {
	lower := strings.ToLower(userAgent)
	for _, bot := range botUserAgents {
		if strings.Contains(lower, bot) {
			return true
		}
	}
	return false
}

// IsValidEmail checks the basic shape and the 255-char cap.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email) && len(email) <= 255
}

// IsDisposableEmail reports whether the email's domain is on the denylist.
func IsDisposableEmail(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return false
	}
	domain = strings.ToLower(domain)
	for _, d := range disposableEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}

// IsValidName enforces length [2,100] and forbids angle brackets.
func IsValidName(name string) bool {
	return len(name) >= 2 && len(name) <= 100 && !anglePattern.MatchString(name)
}

// IsValidMessage enforces length [10,2000].
func IsValidMessage(message string) bool {
	return len(message) >= 10 && len(message) <= 2000
}

// IsSpamContent scans the concatenated fields for spam signatures: keyword
// lists, runs of adjacent URLs, and 11+ repeats of a single character.
func IsSpamContent(name, email, message string) bool {
	combined := name + " " + email + " " + message
	if spamKeywordPattern.MatchString(combined) ||
		urlRunPattern.MatchString(combined) ||
		seoKeywordPattern.MatchString(combined) {
		return true
	}
	return longestRun(combined) >= 11
}

// longestRun returns the length of the longest run of one repeated rune.
// Stands in for the (.)\1{10,} backreference, which RE2 cannot express.
func longestRun(s string) int {
	longest, current := 0, 0
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			current++
		} else {
			current = 1
			prev = r
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// VerifySecurityToken recomputes the expected token for the supplied
// timestamp and nonce and compares. The scheme is the client bundle's
// rolling hash (31x accumulate with int32 wraparound), base36-encoded and
// concatenated with the base36 timestamp and the reversed nonce, then
// base64'd. Deliberately not an HMAC: the salt ships in the client.
func VerifySecurityToken(timestamp int64, nonce, token string) bool {
	return token == ExpectedSecurityToken(timestamp, nonce)
}

// ExpectedSecurityToken exposes the token derivation so callers can mint
// valid tokens (the front-end build does the same computation client-side).
func ExpectedSecurityToken(timestamp int64, nonce string) string {
	data := strconv.FormatInt(timestamp, 10) + "-" + nonce + "-" + tokenSalt
	var hash int32
	for _, c := range data {
		hash = (hash << 5) - hash + int32(c)
	}
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return base64.StdEncoding.EncodeToString([]byte(
		strconv.FormatInt(abs, 36) + strconv.FormatInt(timestamp, 36) + reverse(nonce),
	))
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// LowInteraction is the soft behavioral signal: almost no mouse movement
// and almost no keystrokes. Logged, never used to reject.
func LowInteraction(mouseMovements, keystrokes int) bool {
	return mouseMovements < 3 && keystrokes < 2
}

// UnusualResolution flags widths outside the plausible device range.
// Soft signal only.
func UnusualResolution(resolution string) bool {
	widthStr, _, found := strings.Cut(resolution, "x")
	if !found {
		return false
	}
	width, err := strconv.Atoi(widthStr)
	if err != nil {
		return false
	}
	return width < 320 || width > 7680
}

// EscapeHTML escapes the five characters the email templates interpolate.
// html.EscapeString is not used because it renders ' as &#39; while the
// established templates expect &#039;.
func EscapeHTML(unsafe string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	return r.Replace(unsafe)
}
