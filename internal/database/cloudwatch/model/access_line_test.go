package model

import "testing"

func TestAccessLineFormat(t *testing.T) {
	cases := []struct {
		line     AccessLine
		expected string
	}{
		{AccessLine{Method: "GET", Endpoint: "/api/users", StatusCode: 200, LatencyMs: 12.345}, "GET /api/users - 200 - 12.35ms"},
		{AccessLine{Method: "POST", Endpoint: "/api/orders", StatusCode: 500, LatencyMs: 3}, "POST /api/orders - 500 - 3.00ms"},
		{AccessLine{Method: "DELETE", Endpoint: "/", StatusCode: 404, LatencyMs: 0}, "DELETE / - 404 - 0.00ms"},
	}
	for _, c := range cases {
		if got := c.line.Line(); got != c.expected {
			t.Errorf("expected %q, got %q", c.expected, got)
		}
	}
}
