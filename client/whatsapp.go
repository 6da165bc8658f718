package client

import (
	"net/url"
	"strings"
	"unicode"
)

// pakistanCode replaces the trunk prefix of local numbers.
const pakistanCode = "92"

// WhatsAppLink builds a wa.me chat link to a vendor. It returns "" when the
// phone number has no digits.
func WhatsAppLink(phone, text string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		digits = pakistanCode + strings.TrimPrefix(digits, "0")
	}
	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

// ChatLink is the vendor inquiry link of a booking.
func ChatLink(vendorPhone, serviceName string) string {
	return WhatsAppLink(vendorPhone, "Inquiry about "+serviceName)
}
