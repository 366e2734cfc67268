package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrustedProxies(t *testing.T) {
	cfg, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.1 ", "", "::1"})
	require.NoError(t, err)
	require.Len(t, cfg.AllowedCIDRs, 3)
	assert.Equal(t, 32, cfg.AllowedCIDRs[1].Bits())
	assert.Equal(t, 128, cfg.AllowedCIDRs[2].Bits())

	_, err = ParseTrustedProxies([]string{"not-an-ip"})
	assert.Error(t, err)
}

func TestRemoteAddrExtractor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api", nil)
	r.RemoteAddr = "203.0.113.7:52100"
	r.Header.Set("X-Forwarded-For", "1.2.3.4")

	ip, err := (&RemoteAddrExtractor{}).ExtractIP(r)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)
}

func TestTrustedProxyExtractor(t *testing.T) {
	cfg, err := ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	ex := NewTrustedProxyExtractor(cfg)

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "trusted proxy with XFF", remoteAddr: "10.1.2.3:80", xff: "198.51.100.1, 10.1.2.3", want: "198.51.100.1"},
		{name: "trusted proxy with X-Real-IP", remoteAddr: "10.1.2.3:80", xri: "198.51.100.2", want: "198.51.100.2"},
		{name: "trusted proxy with garbage XFF", remoteAddr: "10.1.2.3:80", xff: "garbage", want: "10.1.2.3"},
		{name: "untrusted peer spoofing XFF", remoteAddr: "203.0.113.9:80", xff: "198.51.100.1", want: "203.0.113.9"},
		{name: "no headers", remoteAddr: "10.1.2.3:80", want: "10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}

			ip, err := ex.ExtractIP(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ip)
		})
	}
}

func TestExtractIPFromAddr(t *testing.T) {
	ip, err := extractIPFromAddr("[::1]:8080")
	require.NoError(t, err)
	assert.Equal(t, "::1", ip)

	ip, err = extractIPFromAddr("192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", ip)

	_, err = extractIPFromAddr("nonsense")
	assert.Error(t, err)
}
