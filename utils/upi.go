package utils

import (
	"fmt"
	"net/url"

	"spotapi/config"

	"github.com/go-resty/resty/v2"
)

// Deep-link schemes per UPI app. Parameters follow the standard
// upi://pay query format (pa=VPA, pn=payee name, am=amount, cu=currency).
var upiSchemes = map[string]string{
	"gpay":      "tez://upi/pay",
	"phonepe":   "phonepe://pay",
	"paytm":     "paytmmp://pay",
	"amazonpay": "amazonpay://pay",
	"bhim":      "upi://pay",
}

// BuildUPIDeepLink builds the redirect URL the client opens to hand off to
// the chosen UPI app. Falls back to the generic upi:// scheme for unknown apps.
func BuildUPIDeepLink(app, vpa string, amount float64, note string) string {
	scheme, ok := upiSchemes[app]
	if !ok {
		scheme = upiSchemes["bhim"]
	}
	if vpa == "" {
		vpa = config.AppConfig.UPIMerchantVPA
	}

	params := url.Values{}
	params.Set("pa", vpa)
	params.Set("pn", "Trading Course")
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("cu", "INR")
	params.Set("tn", note)

	return scheme + "?" + params.Encode()
}

// FetchQRCode retrieves a QR code PNG for the given UPI URL from the
// configured rendering service.
func FetchQRCode(upiURL string) ([]byte, error) {
	client := resty.New()
	resp, err := client.R().
		SetQueryParam("size", "200x200").
		SetQueryParam("data", upiURL).
		Get(config.AppConfig.QRServiceURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("qr service returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// VerifyGatewayPayment asks the configured gateway whether the transaction
// behind orderRef succeeded. With no gateway configured the platform runs in
// simulated mode and every confirmation is accepted; this mirrors the mock
// UPI checkout and is intentionally visible in the API docs.
func VerifyGatewayPayment(orderRef string) (bool, error) {
	if config.AppConfig.UPIGatewayURL == "" {
		return true, nil // simulated mode
	}

	var result struct {
		Status string `json:"status"`
	}

	client := resty.New()
	resp, err := client.R().
		SetResult(&result).
		Get(config.AppConfig.UPIGatewayURL + "/" + orderRef)
	if err != nil {
		return false, err
	}
	if resp.StatusCode() != 200 {
		return false, fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	return result.Status == "SUCCESS", nil
}
