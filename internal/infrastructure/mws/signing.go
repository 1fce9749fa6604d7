package mws

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// signedParams merges the operation parameters with the account and protocol
// parameters and appends the Signature Version 2 signature.
func (c *Client) signedParams(u *url.URL, operation map[string]string) url.Values {
	params := url.Values{}
	for k, v := range operation {
		params.Set(k, v)
	}
	params.Set("AWSAccessKeyId", c.cfg.AccessKeyID)
	params.Set("SellerId", c.cfg.MerchantID)
	params.Set("SignatureMethod", "HmacSHA256")
	params.Set("SignatureVersion", "2")
	params.Set("Timestamp", time.Now().UTC().Format(time.RFC3339))
	params.Set("Version", apiVersion)

	params.Set("Signature", sign(c.cfg.SecretAccessKey, http.MethodPost, u.Host, u.Path, params))
	return params
}

// sign computes the V2 signature: HMAC-SHA256 over
// "METHOD\nhost\npath\nsorted-query", base64 encoded. Params must not yet
// contain a Signature entry.
func sign(secret, method, host, path string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, percentEncode(k)+"="+percentEncode(params.Get(k)))
	}

	canonical := strings.Join([]string{method, host, path, strings.Join(pairs, "&")}, "\n")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// percentEncode applies the RFC 3986 encoding the signature base string
// requires, which differs from form encoding for spaces and tildes.
func percentEncode(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	e = strings.ReplaceAll(e, "%7E", "~")
	return e
}
