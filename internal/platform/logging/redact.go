package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists header names (lowercase) whose values are never
// logged. The HTTP middleware redacts the same set when it dumps request
// headers.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
}

// sensitiveFields are attribute keys that carry TeamForge credentials: the
// login password, SOAP session ids and the keyring passphrase.
var sensitiveFields = []string{
	"password",
	"session_id",
	"sessionId",
	"passphrase",
	"secret",
	"token",
}

// soapSecretPattern matches credential elements inside raw SOAP envelopes,
// e.g. "<password>hunter2</password>" or "<ns1:sessionId>abc</ns1:sessionId>".
var soapSecretPattern = regexp.MustCompile(`(?i)<(\w+:)?(password|sessionId)>[^<]*</(\w+:)?(password|sessionId)>`)

// basicAuthPattern matches HTTP credentials that escape header redaction,
// e.g. when a transport error echoes a request line.
var basicAuthPattern = regexp.MustCompile(`(?i)\b(basic|bearer)\s+[a-z0-9\-._~+/]+=*`)

// redactAttr returns a masq ReplaceAttr that blanks sensitive keys and any
// string value matching the credential patterns.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+3)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("password_"),
		masq.WithRegex(soapSecretPattern),
		masq.WithRegex(basicAuthPattern),
	)
	return masq.New(opts...)
}
