package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// SignatureVersion is the Slack signing scheme version prefix.
const SignatureVersion = "v0"

// MaxTimestampSkew is how old (or far in the future) a request timestamp may
// be before it is rejected as a possible replay.
const MaxTimestampSkew = 5 * time.Minute

// VerifySignature checks a Slack request signature: HMAC-SHA256 of
// "v0:{timestamp}:{body}" keyed with the signing secret, hex-encoded and
// prefixed with "v0=". Timestamps outside the skew window are rejected.
// An empty signing secret rejects everything.
func VerifySignature(signingSecret string, body []byte, timestamp, signature string, now time.Time) bool {
	if signingSecret == "" {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	skew := now.Unix() - ts
	if skew < 0 {
		skew = -skew
	}
	if skew > int64(MaxTimestampSkew.Seconds()) {
		return false
	}

	mac := hmac.New(sha256.New, []byte(signingSecret))
	mac.Write([]byte(SignatureVersion + ":" + timestamp + ":"))
	mac.Write(body)
	expected := SignatureVersion + "=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
