package utils_test

import (
	"net/url"
	"strings"
	"testing"

	"spotapi/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUPIDeepLink(t *testing.T) {
	link := utils.BuildUPIDeepLink("phonepe", "merchant@upi", 299, "Course Purchase")
	require.True(t, strings.HasPrefix(link, "phonepe://pay?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "merchant@upi", query.Get("pa"))
	assert.Equal(t, "299.00", query.Get("am"))
	assert.Equal(t, "INR", query.Get("cu"))
	assert.Equal(t, "Course Purchase", query.Get("tn"))
}

func TestBuildUPIDeepLinkUnknownApp(t *testing.T) {
	link := utils.BuildUPIDeepLink("mystery", "merchant@upi", 100, "Course Purchase")
	assert.True(t, strings.HasPrefix(link, "upi://pay?"))
}
