package okx

import "okxrest/pkg/core"

// Header names sent on every signed request.
const (
	HeaderContentType      = "Content-Type"
	HeaderAccessKey        = "OK-ACCESS-KEY"
	HeaderAccessSign       = "OK-ACCESS-SIGN"
	HeaderAccessTimestamp  = "OK-ACCESS-TIMESTAMP"
	HeaderAccessPassphrase = "OK-ACCESS-PASSPHRASE"
	HeaderSimulatedTrading = "x-simulated-trading"
)

// SignedHeaders builds the exact header set for one signed request.
// x-simulated-trading is present only when the credentials select sandbox mode.
func SignedHeaders(creds *core.Credentials, signature, timestamp string) map[string]string {
	headers := map[string]string{
		HeaderContentType:      "application/json",
		HeaderAccessKey:        creds.APIKey(),
		HeaderAccessSign:       signature,
		HeaderAccessTimestamp:  timestamp,
		HeaderAccessPassphrase: creds.Passphrase().Expose(),
	}
	if creds.Sandbox() {
		headers[HeaderSimulatedTrading] = "1"
	}
	return headers
}
