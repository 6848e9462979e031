package resthttp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// signer produces master-key authorization tokens. The signature covers the
// lowercased verb, the resource type, the resource link and the lowercased
// request date.
type signer struct {
	key []byte
}

func newSigner(base64Key string) (*signer, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("key is not valid base64: %w", err)
	}
	return &signer{key: key}, nil
}

func (s *signer) sign(verb, resourceType, resourceLink, date string) string {
	payload := strings.ToLower(verb) + "\n" +
		resourceType + "\n" +
		resourceLink + "\n" +
		strings.ToLower(date) + "\n" +
		"\n"

	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(payload))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return url.QueryEscape("type=master&ver=1.0&sig=" + signature)
}
