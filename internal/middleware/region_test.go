package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func regionProbe(t *testing.T, lookup CountryLookup, mutate func(*http.Request)) (locale, country string) {
	t.Helper()
	h := Region("en", lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale = LocaleFromContext(r.Context())
		country = CountryFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return locale, country
}

func TestRegionDefaults(t *testing.T) {
	locale, country := regionProbe(t, nil, nil)
	if locale != "en" {
		t.Errorf("locale = %q, want en", locale)
	}
	if country != "" {
		t.Errorf("country = %q, want empty", country)
	}
}

func TestRegionExplicitLocaleHeaderWins(t *testing.T) {
	locale, _ := regionProbe(t, nil, func(r *http.Request) {
		r.Header.Set("X-Locale", "bn")
		r.Header.Set("Accept-Language", "en-US")
	})
	if locale != "bn" {
		t.Errorf("locale = %q, want bn", locale)
	}
}

func TestRegionAcceptLanguage(t *testing.T) {
	locale, country := regionProbe(t, nil, func(r *http.Request) {
		r.Header.Set("Accept-Language", "bn-BD,bn;q=0.9,en;q=0.5")
	})
	if locale != "bn" {
		t.Errorf("locale = %q, want bn", locale)
	}
	if country != "BD" {
		t.Errorf("country = %q, want BD", country)
	}
}

func TestRegionUnsupportedLocaleFallsBack(t *testing.T) {
	locale, _ := regionProbe(t, nil, func(r *http.Request) {
		r.Header.Set("X-Locale", "not-a-locale")
	})
	if locale != "en" {
		t.Errorf("locale = %q, want en", locale)
	}
}

func TestRegionCountryHeader(t *testing.T) {
	_, country := regionProbe(t, nil, func(r *http.Request) {
		r.Header.Set("CF-IPCountry", "bd")
	})
	if country != "BD" {
		t.Errorf("country = %q, want BD", country)
	}
}

func TestRegionGeoIPFallback(t *testing.T) {
	lookup := func(ip string) (string, error) {
		if ip != "203.0.113.7" {
			t.Errorf("lookup ip = %q", ip)
		}
		return "BD", nil
	}
	locale, country := regionProbe(t, lookup, func(r *http.Request) {
		r.RemoteAddr = "203.0.113.7:52011"
	})
	if country != "BD" {
		t.Errorf("country = %q, want BD", country)
	}
	// BD with no language preference means the home-market locale.
	if locale != "bn" {
		t.Errorf("locale = %q, want bn", locale)
	}
}

func TestRegionHeaderBeatsGeoIP(t *testing.T) {
	lookup := func(string) (string, error) {
		t.Error("lookup should not run when a country header is present")
		return "", nil
	}
	_, country := regionProbe(t, lookup, func(r *http.Request) {
		r.Header.Set("X-Country-Code", "US")
	})
	if country != "US" {
		t.Errorf("country = %q, want US", country)
	}
}
