package applyer

import "encoding/base64"

type Base64Encode struct{}

func (a *Base64Encode) Apply(input string) string {
	return base64.StdEncoding.EncodeToString([]byte(input))
}

type Base64Decode struct{}

func (a *Base64Decode) Apply(input string) string {
	decoded, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		// Not base64, leave it alone.
		return input
	}
	return string(decoded)
}
